package skiplist

import "strings"

// Key is a member of a totally ordered key domain.
type Key interface {
	// ret < 0 less than
	// ret == 0 equal
	// ret > 0 greater than
	Compare(k Key) int
}

// IntKey orders ints ascending.
type IntKey int

func (k IntKey) Compare(other Key) int {
	o := other.(IntKey)
	switch {
	case k < o:
		return -1
	case k > o:
		return 1
	}
	return 0
}

// Float64Key orders float64s ascending.
type Float64Key float64

func (k Float64Key) Compare(other Key) int {
	o := other.(Float64Key)
	switch {
	case k < o:
		return -1
	case k > o:
		return 1
	}
	return 0
}

// StringKey orders strings lexicographically.
type StringKey string

func (k StringKey) Compare(other Key) int {
	return strings.Compare(string(k), string(other.(StringKey)))
}

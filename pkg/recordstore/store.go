package recordstore

import (
	"Skipdex/pkg/skiplist"

	"k8s.io/klog/v2"
)

// Employee is one record in the store.
type Employee struct {
	ID         int
	Name       string
	Department string
	Salary     float64
}

// Store keeps employee records behind two independent ordered indexes:
// a primary index on employee ID holding the record, and a secondary
// index mapping salary back to the owning ID. The indexes share no
// state; every mutation maintains both. Like the underlying lists, the
// store assumes a single writer.
type Store struct {
	byID     *skiplist.Skiplist
	bySalary *skiplist.Skiplist
}

func New() *Store {
	return &Store{
		byID:     skiplist.New(),
		bySalary: skiplist.New(),
	}
}

// NewWithOptions builds both indexes from the same options. When opts
// carries an explicit random source the two lists share it.
func NewWithOptions(opts skiplist.Options) (*Store, error) {
	byID, err := skiplist.NewWithOptions(opts)
	if err != nil {
		return nil, err
	}
	bySalary, err := skiplist.NewWithOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Store{byID: byID, bySalary: bySalary}, nil
}

// Add inserts or replaces the record under e.ID and indexes its salary.
func (s *Store) Add(e Employee) {
	klog.V(2).Infof("[recordstore.Add] id=%d name=%s", e.ID, e.Name)

	if old, ok := s.Get(e.ID); ok {
		// Replacing a record must not leave its old salary indexed.
		s.bySalary.Delete(skiplist.Float64Key(old.Salary))
	}

	rec := e
	s.byID.Insert(skiplist.IntKey(e.ID), &rec)
	s.bySalary.Insert(skiplist.Float64Key(e.Salary), e.ID)
}

// Get returns the record stored under id.
func (s *Store) Get(id int) (*Employee, bool) {
	v, ok := s.byID.Search(skiplist.IntKey(id))
	if !ok {
		return nil, false
	}
	return v.(*Employee), true
}

// IDBySalary resolves a salary through the secondary index.
func (s *Store) IDBySalary(salary float64) (int, bool) {
	v, ok := s.bySalary.Search(skiplist.Float64Key(salary))
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// UpdateSalary changes the salary of the record under id and reindexes
// it. Returns false when no such record exists.
func (s *Store) UpdateSalary(id int, salary float64) bool {
	rec, ok := s.Get(id)
	if !ok {
		return false
	}
	klog.V(2).Infof("[recordstore.UpdateSalary] id=%d salary=%v->%v", id, rec.Salary, salary)

	s.bySalary.Delete(skiplist.Float64Key(rec.Salary))
	rec.Salary = salary
	s.bySalary.Insert(skiplist.Float64Key(salary), id)
	return true
}

// Remove deletes the record under id from both indexes.
func (s *Store) Remove(id int) bool {
	rec, ok := s.Get(id)
	if !ok {
		return false
	}
	klog.V(2).Infof("[recordstore.Remove] id=%d", id)

	s.bySalary.Delete(skiplist.Float64Key(rec.Salary))
	return s.byID.Delete(skiplist.IntKey(id))
}

// List returns every record in ascending ID order.
func (s *Store) List() []*Employee {
	out := []*Employee{}
	for it := s.byID.Iterator(); it.Valid(); it.Next() {
		out = append(out, it.Value().(*Employee))
	}
	return out
}

// Len reports the number of records.
func (s *Store) Len() int {
	return s.byID.Len()
}

// DumpStructure renders the primary index structure for debugging.
func (s *Store) DumpStructure() string {
	return s.byID.DumpStructure()
}

package main

import (
	"Skipdex/cmd/skipdemo/app"

	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()
	app.New("skipdemo").Run()
}

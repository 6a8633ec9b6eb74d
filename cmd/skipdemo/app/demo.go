package app

import (
	"fmt"
	"os"
	"strconv"

	"Skipdex/cmd/skipdemo/app/options"
	"Skipdex/pkg/recordstore"
	"Skipdex/pkg/skiplist"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"k8s.io/klog/v2"
)

func section(title string) {
	fmt.Printf("\n%s %s\n", color.CyanString("==>"), title)
}

func runListDemo(opts *options.Options) error {
	section("Basic skip list operations")

	list, err := skiplist.NewWithOptions(opts.IndexOptions())
	if err != nil {
		return err
	}

	fruits := []struct {
		key   int
		value string
	}{
		{10, "Apple"},
		{20, "Banana"},
		{5, "Cherry"},
		{30, "Date"},
		{15, "Elderberry"},
		{25, "Fig"},
	}
	for _, f := range fruits {
		klog.V(2).Infof("[skipdemo.Insert] key=%d value=%s", f.key, f.value)
		list.Insert(skiplist.IntKey(f.key), f.value)
		fmt.Printf("Inserted: %d -> %s\n", f.key, f.value)
	}

	fmt.Printf("\nSkip list size: %d\n", list.Len())
	fmt.Print("Contents:")
	for _, e := range list.Entries() {
		fmt.Printf(" (%v, %v)", e.Key, e.Value)
	}
	fmt.Println()

	section("Search operations")
	for _, key := range []int{15, 25, 35} {
		if v, ok := list.Search(skiplist.IntKey(key)); ok {
			fmt.Printf("Search %d: Found - %v\n", key, v)
		} else {
			fmt.Printf("Search %d: Not found\n", key)
		}
	}

	if opts.DumpLevels {
		section("Skip list structure")
		fmt.Print(list.DumpStructure())
	}

	section("Delete operations")
	for _, key := range []int{20, 35, 5} {
		if list.Delete(skiplist.IntKey(key)) {
			fmt.Printf("Delete %d: Success\n", key)
		} else {
			fmt.Printf("Delete %d: Not found\n", key)
		}
	}

	fmt.Print("After deletions:")
	for _, e := range list.Entries() {
		fmt.Printf(" (%v, %v)", e.Key, e.Value)
	}
	fmt.Println()

	return nil
}

func runEmployeeDemo(opts *options.Options) error {
	section("Employee database")

	store, err := recordstore.NewWithOptions(opts.IndexOptions())
	if err != nil {
		return err
	}

	employees := []recordstore.Employee{
		{ID: 1001, Name: "Alice Johnson", Department: "Engineering", Salary: 95000},
		{ID: 1005, Name: "Bob Smith", Department: "Marketing", Salary: 65000},
		{ID: 1002, Name: "Carol Williams", Department: "Engineering", Salary: 105000},
		{ID: 1008, Name: "David Brown", Department: "Sales", Salary: 55000},
		{ID: 1003, Name: "Eve Davis", Department: "HR", Salary: 70000},
		{ID: 1010, Name: "Frank Miller", Department: "Engineering", Salary: 120000},
	}
	for _, e := range employees {
		store.Add(e)
		fmt.Printf("Added employee: %s (ID: %d)\n", e.Name, e.ID)
	}
	fmt.Printf("\nTotal employees: %d\n", store.Len())

	fmt.Println("\nRetrieving employee 1002:")
	if e, ok := store.Get(1002); ok {
		fmt.Printf("Name: %s, Department: %s, Salary: $%.0f\n", e.Name, e.Department, e.Salary)
	}

	fmt.Println("\nUpdating Alice Johnson's salary...")
	store.UpdateSalary(1001, 98000)
	if e, ok := store.Get(1001); ok {
		fmt.Printf("New salary: $%.0f\n", e.Salary)
	}

	fmt.Println("\nAll employees (sorted by ID):")
	printEmployeeTable(store.List())

	fmt.Println("\nRemoving employee 1008...")
	store.Remove(1008)
	fmt.Printf("Remaining employees: %d\n", store.Len())

	if opts.DumpLevels {
		section("Employee database structure")
		fmt.Print(store.DumpStructure())
	}

	return nil
}

func printEmployeeTable(list []*recordstore.Employee) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Department", "Salary"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for _, e := range list {
		table.Append([]string{
			strconv.Itoa(e.ID),
			e.Name,
			e.Department,
			fmt.Sprintf("$%.0f", e.Salary),
		})
	}
	table.Render()
}

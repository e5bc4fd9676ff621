package tally_test

import (
	"fmt"
	"log"

	"github.com/aretw0/tally"
)

// Example_basic adds a few expenses, updates one and removes another.
func Example_basic() {
	store := tally.New()

	lunch, err := tally.NewRecordFromFloat("Lunch", 12.50)
	if err != nil {
		log.Fatal(err)
	}
	coffee, err := tally.NewRecordFromFloat("Coffee", 3.75)
	if err != nil {
		log.Fatal(err)
	}
	dinner, err := tally.NewRecordFromFloat("Lunch", 15.00)
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range []*tally.Record{lunch, coffee, dinner} {
		if err := store.AddRecord(r); err != nil {
			log.Fatal(err)
		}
	}

	amount, _ := tally.ParseAmount("13.00")
	if err := lunch.Update(tally.Patch{Amount: &amount}); err != nil {
		log.Fatal(err)
	}
	store.RemoveRecord(coffee.ID())

	for _, e := range store.Export() {
		fmt.Println(e.Title, e.Amount)
	}
	fmt.Println("total", store.Total())
	// Output:
	// Lunch 13
	// Lunch 15
	// total 28
}

// ExampleStore_GetByTitle shows that a title with no match is not an error.
func ExampleStore_GetByTitle() {
	store := tally.New()
	r, _ := tally.NewRecordFromFloat("Coffee", 3.75)
	_ = store.AddRecord(r)

	matches, err := store.GetByTitle("Dinner")
	fmt.Println(len(matches), err)

	_, err = store.GetByTitle("")
	fmt.Println(err)
	// Output:
	// 0 <nil>
	// invalid title "": empty title
}

package itinerary_test

import (
	"fmt"

	"github.com/katalvlaran/skyfare/builder"
	"github.com/katalvlaran/skyfare/itinerary"
)

// ExampleCheapestFromRecords routes the classic diamond network: the direct
// branch through B costs $150, the branch through C only $80.
func ExampleCheapestFromRecords() {
	records := []builder.Record{
		{Origin: "A", Destination: "B", Fare: 100},
		{Origin: "B", Destination: "D", Fare: 50},
		{Origin: "A", Destination: "C", Fare: 40},
		{Origin: "C", Destination: "D", Fare: 40},
	}

	it, err := itinerary.CheapestFromRecords(records, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, fl := range it.Flights {
		fmt.Printf("%s -> %s ($%.0f)\n", fl.From, fl.To, fl.Fare)
	}
	fmt.Printf("total $%.0f\n", it.TotalFare)
	// Output:
	// A -> C ($40)
	// C -> D ($40)
	// total $80
}

// Package output provides utilities for formatting and displaying derived
// card figures.
package output

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/inventory"
)

// PrettyFormat outputs a human-readable rather than machine-readable table
// of the card figures per month for one brand.
func PrettyFormat(brand string, cards map[string]inventory.CardSet) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Cards for brand %s ---\n", brand)
	fmt.Printf("Month   | Card          | Core          | Outlet\n")
	fmt.Printf("_____   | ____          | ____          | ______\n")
	for _, month := range sortedMonths(cards) {
		set := cards[month]
		for _, row := range cardRows(set) {
			_, _ = p.Printf("%s | %-13s | %13d | %13d\n", month, row.name, row.value.Core, row.value.Outlet)
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(brand string, cards map[string]inventory.CardSet) {
	fmt.Printf(`"brand","month","card","core","outlet"`)
	fmt.Printf("\n")
	for _, month := range sortedMonths(cards) {
		set := cards[month]
		for _, row := range cardRows(set) {
			fmt.Printf(`"%s","%s","%s","%d","%d"`, brand, month, row.name, row.value.Core, row.value.Outlet)
			fmt.Printf("\n")
		}
	}
}

// PrintMonths outputs the editable month list, one key per line.
func PrintMonths(months []string) {
	for _, month := range months {
		fmt.Println(month)
	}
}

type cardRow struct {
	name  string
	value inventory.CardValue
}

func cardRows(set inventory.CardSet) []cardRow {
	return []cardRow{
		{"total", set.Total},
		{"agency", set.Agency},
		{"headquarters", set.Headquarters},
		{"retailPlanned", set.RetailPlanned},
		{"warehouse", set.Warehouse},
	}
}

func sortedMonths(cards map[string]inventory.CardSet) []string {
	months := make([]string, len(cards))
	n := 0
	for month := range cards {
		months[n] = month
		n++
	}
	sort.Strings(months)
	return months
}

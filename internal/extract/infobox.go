package extract

import (
	"faculty-analyze-go/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// InfoboxRows cleans the first table.infobox on a reference-style page into
// an ordered Key/Value table. Rows missing either cell are dropped.
func InfoboxRows(doc *goquery.Document) []model.InfoboxRow {
	rows := []model.InfoboxRow{}
	doc.Find("table.infobox").First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		key := NormalizeSpace(tr.Find("th").First().Text())
		value := NormalizeSpace(tr.Find("td").First().Text())
		if key == "" || value == "" {
			return
		}
		rows = append(rows, model.InfoboxRow{Key: key, Value: value})
	})
	return rows
}

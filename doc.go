// Package postletter renders window-envelope letters: every recipient record
// of a dataset becomes one A4 page of the Austrian Post "Vorlage mit Absender"
// layout, with the address block placed so that it shows through the window
// of a DL envelope.
//
// A page is made of five fixed text regions: title, return line, address,
// date and body. Positions never move; text that does not fit its region is
// shrunk until it does.
//
//	records, err := recipient.Load("dataset.csv")
//	if err != nil {
//		return err
//	}
//	doc, err := postletter.Render(records, template.Default(), postletter.Metadata{
//		Title:  "Post AG - Vorlage mit Absender",
//		Author: "Post AG",
//	})
//	if err != nil {
//		return err
//	}
//	fmt.Println(doc.Report()) // 3 of 3 pages rendered
//	return doc.Finalize("letters.pdf")
//
// Fonts default to the embedded Go family; WithFontDir loads a TrueType
// family such as Arial from disk.
package postletter

// The default date zone is CET, which must resolve on hosts without a
// zoneinfo database.
import _ "time/tzdata"

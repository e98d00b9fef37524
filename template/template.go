// Package template describes the "Vorlage mit Absender" window letter: the
// five fixed frames of the page, the texts that fill them and the localized
// date line.
//
// Texts are markup as understood by textfit: newlines break lines and <b>, <i>
// select the bold and italic font variants. A template can be loaded from JSON:
//
//	{
//	  "header": "Max Mustermann\nMusterstr. 123 · 12345 Musterort",
//	  "returnLine": "Max Mustermann, Musterstr. 123, 12345 Musterort",
//	  "originCity": "Musterort",
//	  "body": "<b>Betreff: ...</b>\n\nSehr geehrte Damen und Herren, ..."
//	}
//
// Keys that are absent keep their default text; an explicit empty string
// leaves the region blank.
package template

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Template holds the record-independent texts of the letter.
type Template struct {
	Header     string `json:"header"`     // title block, usually the sender's letterhead
	ReturnLine string `json:"returnLine"` // small return address above the window
	OriginCity string `json:"originCity"` // prefixes the date line, may be empty
	Body       string `json:"body"`
}

const defaultBody = `<b>Betreff: Briefvorlage Standard mit Absender</b>


Sehr geehrte*r Anwender*in der Tages-Post,

bei diesem Dokument handelt es sich um eine einfache Vorlage für einen Brief, der über www.tages-post.at versendet werden kann und den Bestimmungen der Österreichischen Post bezüglich der Platzierung der Empfänger*innenadresse auf dem Briefbogen entspricht.

Löschen Sie diesen Hinweis und ersetzen Sie den Text durch den von Ihnen gewünschten Text. Speichern Sie den Brief abschließend als PDF-Datei ab.

<b>Das Anschriftenfeld:</b> Dieses haben wir in dieser Vorlage fest „verankert“, sodass es nicht verrutschen kann. Im Anschriftenfeld haben Sie insgesamt sechs Zeilen plus eine Zeile für die Rücksendeangabe zur Verfügung. Das Anschriftenfeld sollte einen Abstand von 6,2 cm vom oberen Seitenrand haben, damit es deutlich in einem Fenster-Kuvert sichtbar ist.
*Wenn Sie Sendungen ins Ausland versenden, bitte das Land in GROSSBUCHSTABEN anführen.

<b>Schriftarten, -größen und -stile:</b>
Verwenden Sie zugunsten der Lesbarkeit im fortlaufenden Text keine Schrift, die kleiner als 10 Punkt ist, sowie keine ausgefallenen Schriftarten, wie zum Beispiel Schreibschrift. Verzichten Sie auf ausgefallene Schriftstile, wie zum Beispiel Kapitälchen im fortlaufenden Text. Wir empfehlen folgende Schriftarten: Arial, Times, Calibri und Helvetica

Wir wünschen Ihnen viel Erfolg bei der Verfassung Ihrer Briefe. Laden Sie hierzu einfach Ihren abgespeicherten Brief im PDF-Format über www.tages-post.at hoch und wir drucken und versenden diesen gerne für Sie.

Mit freundlichen Grüßen
Ihr Tages-Post Team`

// Default returns the sample letter of the Post AG template.
func Default() Template {
	return Template{
		Header:     "Max Mustermann\nMusterstr. 123 · 12345 Musterort",
		ReturnLine: "Max Mustermann, Musterstr. 123, 12345 Musterort <i>(optional)</i>",
		OriginCity: "Musterort",
		Body:       defaultBody,
	}
}

// Parse decodes a JSON template on top of the defaults.
func Parse(data []byte) (Template, error) {
	t := Default()
	if err := json.Unmarshal(data, &t); err != nil {
		return Template{}, fmt.Errorf("template: parsing: %w", err)
	}
	return t, nil
}

// Read decodes a JSON template from r.
func Read(r io.Reader) (Template, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Template{}, fmt.Errorf("template: reading: %w", err)
	}
	return Parse(data)
}

// Load reads a JSON template file.
func Load(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("template: %w", err)
	}
	return Parse(data)
}

// DateLine joins the origin city and the formatted date.
func (t Template) DateLine(date string) string {
	city := strings.TrimSpace(t.OriginCity)
	if city == "" {
		return date
	}
	return city + ", " + date
}

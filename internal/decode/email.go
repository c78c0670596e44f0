package decode

import (
	"bytes"
	"strings"

	"github.com/jhillyerd/enmime"

	"vdat/internal"
)

type Workbook struct {
	Name   string
	Sheets []internal.Sheet
}

type Email struct {
	Subject         string
	BodyText        string
	Workbooks       []Workbook
	AttachmentNames []string
}

func DecodeEmail(raw []byte) (Email, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return Email{}, err
	}

	out := Email{
		Subject:  env.GetHeader("Subject"),
		BodyText: env.Text,
	}

	for _, att := range env.Attachments {
		filename := strings.TrimSpace(att.FileName)
		if filename == "" {
			filename = "attachment"
		}
		out.AttachmentNames = append(out.AttachmentNames, filename)

		if !hasSpreadsheetExt(filename) {
			continue
		}
		sheets, err := DecodeSpreadsheet(att.Content, filename)
		if err != nil {
			continue
		}
		out.Workbooks = append(out.Workbooks, Workbook{Name: filename, Sheets: sheets})
	}

	return out, nil
}

func hasSpreadsheetExt(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range []string{".xlsx", ".xlsm", ".xls", ".csv"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

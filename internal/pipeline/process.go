package pipeline

import (
	"context"
	"fmt"

	"vdat/internal"
	"vdat/internal/config"
	"vdat/internal/decode"
	"vdat/internal/lookup"
	"vdat/internal/ocr"
	"vdat/internal/util"
)

type Service struct {
	cfg    config.Config
	norm   *Normalizer
	engine ocr.Engine
}

func NewService(cfg config.Config, tables lookup.Tables, engine ocr.Engine) *Service {
	return &Service{cfg: cfg, norm: NewNormalizer(tables), engine: engine}
}

func (s *Service) Normalizer() *Normalizer { return s.norm }

type Run struct {
	spreadsheet []internal.VehicleRecord
	ocr         []internal.VehicleRecord
	paste       []internal.VehicleRecord

	SheetReports []internal.SheetResult
	Dropped      []internal.DroppedRow
	Notes        []string
}

func (s *Service) NewRun() *Run { return &Run{} }

func (s *Service) IngestSpreadsheet(run *Run, filename string, blob []byte) error {
	sheets, err := decode.DecodeSpreadsheet(blob, filename)
	if err != nil {
		return err
	}
	for _, sheet := range sheets {
		res := s.norm.ProcessSheet(sheet.Name, sheet.Grid, s.cfg.HeaderScanLimit)
		run.SheetReports = append(run.SheetReports, res)
		run.spreadsheet = append(run.spreadsheet, res.Records...)
	}
	return nil
}

func (s *Service) IngestImage(ctx context.Context, run *Run, image []byte, defaultBrand, defaultModel string) error {
	text, err := s.engine.Recognize(ctx, image)
	if err != nil {
		return err
	}
	s.ingestManifestText(run, ocr.NormalizeText(text), defaultBrand, defaultModel)
	return nil
}

func (s *Service) IngestPDF(run *Run, blob []byte, defaultBrand, defaultModel string) error {
	text, err := decode.PDFText(blob)
	if err != nil {
		return err
	}
	s.ingestManifestText(run, text, defaultBrand, defaultModel)
	return nil
}

func (s *Service) ingestManifestText(run *Run, text, defaultBrand, defaultModel string) {
	extracted := s.norm.ExtractFromText(text, OCROptions{
		DefaultBrand:  defaultBrand,
		DefaultModel:  defaultModel,
		StrictCharset: s.cfg.OCRStrictCharset,
	})
	for _, rec := range extracted {
		cleanVIN, status := CheckVIN(rec.VIN)
		if !status.Valid {
			run.Dropped = append(run.Dropped, internal.DroppedRow{VIN: rec.VIN, Reason: status.Reason})
			continue
		}
		if util.UpperTrim(rec.Brand) == "" {
			run.Dropped = append(run.Dropped, internal.DroppedRow{VIN: cleanVIN, Reason: "Empty Brand"})
			continue
		}
		rec.VIN = cleanVIN
		rec.Brand = s.norm.MapBrand(rec.Brand)
		run.ocr = append(run.ocr, rec)
	}
}

func (s *Service) IngestPaste(run *Run, text string) {
	grid := decode.DecodePaste(text)
	res := s.norm.ProcessSheet("pasted", grid, s.cfg.HeaderScanLimit)
	for i := range res.Records {
		res.Records[i].Source = internal.ChannelPaste
	}
	run.SheetReports = append(run.SheetReports, res)
	run.paste = append(run.paste, res.Records...)
}

func (s *Service) IngestEmail(run *Run, raw []byte) error {
	email, err := decode.DecodeEmail(raw)
	if err != nil {
		return err
	}

	det := decode.DetectManifest(email.Subject, email.BodyText, email.AttachmentNames)
	if !det.IsManifest {
		run.Notes = append(run.Notes, fmt.Sprintf("email %q skipped: no manifest detected (score %.2f)", email.Subject, det.Score))
		return nil
	}

	for _, wb := range email.Workbooks {
		for _, sheet := range wb.Sheets {
			res := s.norm.ProcessSheet(wb.Name+"/"+sheet.Name, sheet.Grid, s.cfg.HeaderScanLimit)
			run.SheetReports = append(run.SheetReports, res)
			run.spreadsheet = append(run.spreadsheet, res.Records...)
		}
	}
	if email.BodyText != "" {
		s.IngestPaste(run, email.BodyText)
	}
	return nil
}

func (s *Service) Finalize(run *Run, meta BatchMeta) internal.MergeResult {
	return MergeChannels(meta, run.spreadsheet, run.ocr, run.paste)
}

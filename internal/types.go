package internal

type Channel string

const (
	ChannelSpreadsheet Channel = "spreadsheet"
	ChannelOCR         Channel = "ocr"
	ChannelPaste       Channel = "paste"
)

type RawGrid [][]string

type Sheet struct {
	Name string
	Grid RawGrid
}

type VINStatus struct {
	Valid  bool
	Reason string
}

type VehicleRecord struct {
	VIN    string
	Brand  string
	Model  string
	Source Channel
}

type ExportRecord struct {
	VIN          string
	Brand        string
	Model        string
	ModelType    string
	Customer     string
	POA          string
	AssignedDate string
}

type SheetOutcome string

const (
	SheetEmpty     SheetOutcome = "empty"
	SheetNoHeader  SheetOutcome = "no_header"
	SheetProcessed SheetOutcome = "processed"
	SheetCrashed   SheetOutcome = "crashed"
)

type DroppedRow struct {
	VIN    string
	Reason string
}

type SheetResult struct {
	SheetName string
	Outcome   SheetOutcome
	HeaderRow int
	Records   []VehicleRecord
	Dropped   []DroppedRow
	Err       string
}

type MergeResult struct {
	Records   []ExportRecord
	Discarded int
}

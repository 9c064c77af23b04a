package models

// Columns is the header of the master spreadsheet, in order.
var Columns = []string{
	"Root Folder",
	"Subject Folder",
	"Number of Subfolders in Subject Folder",
	"Subfolder Name (inside Subject)",
	"Dicom Count",
	"Twix Count",
	"Acquisition Date",
	"File Creation Date",
	"DAT File",
	"Reconstruction (%)",
}

type OutputRow struct {
	RootFolder     string
	SubjectFolder  string
	SubfolderCount int
	Subpath        string
	DicomCount     int
	TwixCount      int
	StudyDate      StudyDate
	CreationDate   OptionalDate
	// DatFile is empty when the directory has no raw-data file.
	DatFile string
	// Reconstruction is filled in by hand after export.
	Reconstruction *float64
}

// Rows expands a leaf directory into one row per raw-data file, or a single
// row without a file name when there is none.
func (l LeafDirectory) Rows() []OutputRow {
	base := OutputRow{
		RootFolder:     l.RootFolder,
		SubjectFolder:  l.SubjectFolder,
		SubfolderCount: l.SubfolderCount,
		Subpath:        l.Subpath,
		DicomCount:     l.DicomCount,
		TwixCount:      len(l.RawDataFiles),
		StudyDate:      l.StudyDate,
		CreationDate:   l.CreationDate,
	}
	if len(l.RawDataFiles) == 0 {
		return []OutputRow{base}
	}

	rows := make([]OutputRow, 0, len(l.RawDataFiles))
	for _, name := range l.RawDataFiles {
		row := base
		row.DatFile = name
		rows = append(rows, row)
	}
	return rows
}

// Values returns the row as spreadsheet cells, matching Columns.
func (r OutputRow) Values() []interface{} {
	values := []interface{}{
		r.RootFolder,
		r.SubjectFolder,
		r.SubfolderCount,
		nil,
		r.DicomCount,
		r.TwixCount,
		r.StudyDate.Cell(),
		r.CreationDate.Cell(),
		nil,
		nil,
	}
	if r.Subpath != "" {
		values[3] = r.Subpath
	}
	if r.DatFile != "" {
		values[8] = r.DatFile
	}
	if r.Reconstruction != nil {
		values[9] = *r.Reconstruction
	}
	return values
}

// Summary describes a finished run.
type Summary struct {
	RunID     string `json:"run_id"`
	Root      string `json:"root_folder"`
	ExcelPath string `json:"excel_path"`
	Rows      int    `json:"rows"`
	Files     int    `json:"files_seen"`
	Elapsed   string `json:"elapsed"`
}

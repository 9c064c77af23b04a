package models

// StudyDateKind tells how the study date of a directory was obtained.
type StudyDateKind int

const (
	// StudyDateAbsent means no DICOM file, an unreadable file or no tag.
	StudyDateAbsent StudyDateKind = iota
	// StudyDateParsed means a YYYYMMDD value reformatted to YYYY-MM-DD.
	StudyDateParsed
	// StudyDateRaw means the tag held something else and is kept verbatim.
	StudyDateRaw
)

type StudyDate struct {
	Kind  StudyDateKind
	Value string
}

// Cell returns the spreadsheet value, nil when absent.
func (d StudyDate) Cell() interface{} {
	if d.Kind == StudyDateAbsent {
		return nil
	}
	return d.Value
}

// OptionalDate is a YYYY-MM-DD date that may be missing.
type OptionalDate struct {
	Value string
	Valid bool
}

func (d OptionalDate) Cell() interface{} {
	if !d.Valid {
		return nil
	}
	return d.Value
}

// LeafDirectory is a directory with at least one file, two or more levels
// below the scan root.
type LeafDirectory struct {
	RootFolder     string
	SubjectFolder  string
	Subpath        string
	DicomCount     int
	RawDataFiles   []string
	StudyDate      StudyDate
	CreationDate   OptionalDate
	SubfolderCount int
}

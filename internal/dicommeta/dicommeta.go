// Package dicommeta reads the two pieces of metadata the master sheet needs
// from a representative DICOM file: the study date stored in the file and the
// date the file was created on disk.
package dicommeta

import (
	"regexp"
	"time"

	"github.com/djherbis/times"
	"github.com/go-git/go-billy/v5"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"ikh/dicom-master/internal/models"
)

const (
	studyDateLayout = "20060102"
	dateLayout      = "2006-01-02"
)

var studyDatePattern = regexp.MustCompile(`^\d{8}$`)

// ReadStudyDate returns the StudyDate (0008,0020) of the file at path. Any
// failure to open or parse the file, or a missing or empty tag, gives
// StudyDateAbsent.
func ReadStudyDate(fs billy.Filesystem, path string) models.StudyDate {
	raw, ok := readStudyDateTag(fs, path)
	if !ok {
		return models.StudyDate{Kind: models.StudyDateAbsent}
	}
	return FormatStudyDate(raw)
}

func readStudyDateTag(fs billy.Filesystem, path string) (raw string, ok bool) {
	// The parser can panic on truncated input.
	defer func() {
		if r := recover(); r != nil {
			raw, ok = "", false
		}
	}()

	info, err := fs.Stat(path)
	if err != nil {
		return "", false
	}
	f, err := fs.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	ds, err := dicom.Parse(f, info.Size(), nil,
		dicom.SkipPixelData(),
		dicom.AllowMissingMetaElementGroupLength(),
	)
	if err != nil {
		return "", false
	}
	elem, err := ds.FindElementByTag(tag.StudyDate)
	if err != nil || elem.Value == nil {
		return "", false
	}
	values, isStrings := elem.Value.GetValue().([]string)
	if !isStrings || len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}

// FormatStudyDate turns "20230615" into "2023-06-15". Anything that is not
// an 8-digit calendar date is passed through unchanged.
func FormatStudyDate(raw string) models.StudyDate {
	if raw == "" {
		return models.StudyDate{Kind: models.StudyDateAbsent}
	}
	if studyDatePattern.MatchString(raw) {
		if t, err := time.Parse(studyDateLayout, raw); err == nil {
			return models.StudyDate{Kind: models.StudyDateParsed, Value: t.Format(dateLayout)}
		}
	}
	return models.StudyDate{Kind: models.StudyDateRaw, Value: raw}
}

// CreationDate returns the local creation date of the file: the birth time
// where the platform records one, otherwise the inode change time.
func CreationDate(fs billy.Filesystem, path string) models.OptionalDate {
	info, err := fs.Stat(path)
	if err != nil || info.Sys() == nil {
		return models.OptionalDate{}
	}

	ts := times.Get(info)
	var t time.Time
	switch {
	case ts.HasBirthTime():
		t = ts.BirthTime()
	case ts.HasChangeTime():
		t = ts.ChangeTime()
	default:
		return models.OptionalDate{}
	}
	return models.OptionalDate{Value: t.Local().Format(dateLayout), Valid: true}
}

package scanner

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"

	"ikh/dicom-master/internal/dicommeta"
	"ikh/dicom-master/internal/models"
)

// ProgressFunc receives the number of files seen and rows built so far.
type ProgressFunc func(filesSeen, rowsBuilt int)

// Scanner walks a tree of study folders laid out as
// <root>/<top-level folder>/<subject folder>/... .
type Scanner struct {
	FS            billy.Filesystem
	ProgressEvery int
	Progress      ProgressFunc

	filesSeen int
	rowsBuilt int
}

func NewScanner(fs billy.Filesystem, progressEvery int, progress ProgressFunc) *Scanner {
	return &Scanner{
		FS:            fs,
		ProgressEvery: progressEvery,
		Progress:      progress,
	}
}

// FilesSeen returns the number of files counted by the last BuildRows.
func (s *Scanner) FilesSeen() int {
	return s.filesSeen
}

// Run counts subfolders for every subject, then builds the rows. The count
// map is complete before the second walk starts.
func (s *Scanner) Run() ([]models.OutputRow, error) {
	log.Print("Step 1/2: Precomputing number of subfolders per subject...")
	counts, err := s.CountSubfolders()
	if err != nil {
		return nil, err
	}

	log.Print("Step 2/2: Scanning files and building rows...")
	return s.BuildRows(counts)
}

// CountSubfolders maps every subject folder name to the number of its
// immediate child directories. A name that appears under two top-level
// folders keeps the count of the one walked last.
func (s *Scanner) CountSubfolders() (map[string]int, error) {
	counts := make(map[string]int)
	err := walk(s.FS, ".", func(dir string, dirs, files []string) error {
		parts := segments(dir)
		if len(parts) == 2 {
			counts[parts[1]] = len(dirs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// BuildRows walks the tree again and emits the spreadsheet rows in walk
// order. Directories without files and directories less than two levels
// below the root produce nothing.
func (s *Scanner) BuildRows(counts map[string]int) ([]models.OutputRow, error) {
	s.filesSeen, s.rowsBuilt = 0, 0

	var rows []models.OutputRow
	err := walk(s.FS, ".", func(dir string, dirs, files []string) error {
		if len(files) == 0 {
			return nil
		}
		parts := segments(dir)
		if len(parts) < 2 {
			return nil
		}

		leaf := s.leafDirectory(dir, parts, files)
		leaf.SubfolderCount = counts[leaf.SubjectFolder]

		built := leaf.Rows()
		rows = append(rows, built...)
		s.observe(len(files), len(built))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Scanner) leafDirectory(dir string, parts, files []string) models.LeafDirectory {
	leaf := models.LeafDirectory{
		RootFolder:    parts[0],
		SubjectFolder: parts[1],
		Subpath:       strings.Join(parts[2:], string(filepath.Separator)),
	}

	var dicomFiles []string
	for _, name := range files {
		switch {
		case IsDicom(name):
			dicomFiles = append(dicomFiles, name)
		case IsRawData(name):
			leaf.RawDataFiles = append(leaf.RawDataFiles, name)
		}
	}
	leaf.DicomCount = len(dicomFiles)

	if len(dicomFiles) > 0 {
		sample := s.FS.Join(dir, dicomFiles[0])
		leaf.StudyDate = dicommeta.ReadStudyDate(s.FS, sample)
		leaf.CreationDate = dicommeta.CreationDate(s.FS, sample)
	}
	return leaf
}

func (s *Scanner) observe(files, rows int) {
	before := s.filesSeen
	s.filesSeen += files
	s.rowsBuilt += rows

	if s.Progress == nil || s.ProgressEvery <= 0 {
		return
	}
	if before/s.ProgressEvery != s.filesSeen/s.ProgressEvery {
		s.Progress(s.filesSeen, s.rowsBuilt)
	}
}

// IsDicom reports whether name has a .dcm or .ima extension, in any case.
func IsDicom(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".dcm") || strings.HasSuffix(lower, ".ima")
}

// IsRawData reports whether name is a Twix raw-data (.dat) file.
func IsRawData(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".dat")
}

// segments splits a walk path relative to the root. The root itself has
// no segments.
func segments(dir string) []string {
	dir = strings.Trim(filepath.ToSlash(dir), "/")
	if dir == "" || dir == "." {
		return nil
	}
	return strings.Split(dir, "/")
}

type walkFunc func(dir string, dirs, files []string) error

// walk visits dir and then its subdirectories, top-down, in the order the
// filesystem lists them. The first ReadDir failure stops the walk.
func walk(fs billy.Filesystem, dir string, fn walkFunc) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %q: %w", dir, err)
	}

	var dirs, files []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}

	if err := fn(dir, dirs, files); err != nil {
		return err
	}

	for _, name := range dirs {
		if err := walk(fs, fs.Join(dir, name), fn); err != nil {
			return err
		}
	}
	return nil
}

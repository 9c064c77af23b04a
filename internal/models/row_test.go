package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafDirectoryRows(t *testing.T) {
	leaf := LeafDirectory{
		RootFolder:     "Top",
		SubjectFolder:  "S1",
		Subpath:        "scan",
		SubfolderCount: 2,
		DicomCount:     1,
		StudyDate:      StudyDate{Kind: StudyDateParsed, Value: "2023-06-15"},
	}

	rows := leaf.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].DatFile)
	assert.Equal(t, 0, rows[0].TwixCount)

	leaf.RawDataFiles = []string{"a.dat", "b.dat"}
	rows = leaf.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "a.dat", rows[0].DatFile)
	assert.Equal(t, "b.dat", rows[1].DatFile)
	assert.Equal(t, 2, rows[1].TwixCount)
	assert.Equal(t, "2023-06-15", rows[1].StudyDate.Value)
}

func TestOutputRowValues(t *testing.T) {
	row := OutputRow{
		RootFolder:     "Top",
		SubjectFolder:  "S1",
		SubfolderCount: 3,
		DicomCount:     5,
		StudyDate:      StudyDate{Kind: StudyDateRaw, Value: "invalid"},
	}

	values := row.Values()
	require.Len(t, values, len(Columns))
	assert.Equal(t, []interface{}{"Top", "S1", 3, nil, 5, 0, "invalid", nil, nil, nil}, values)

	pct := 80.0
	row.Subpath = "a/b"
	row.DatFile = "meas.dat"
	row.CreationDate = OptionalDate{Value: "2024-01-01", Valid: true}
	row.Reconstruction = &pct
	row.StudyDate = StudyDate{}
	assert.Equal(t, []interface{}{"Top", "S1", 3, "a/b", 5, 0, nil, "2024-01-01", "meas.dat", 80.0}, row.Values())
}

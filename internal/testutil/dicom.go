// dicom.go - minimal DICOM Part 10 files for tests
package testutil

import (
	"bytes"
	"encoding/binary"
)

// explicitElement encodes a short-form explicit VR little endian element.
func explicitElement(group, element uint16, vr string, value []byte) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, group)
	binary.Write(&buf, binary.LittleEndian, element)
	buf.WriteString(vr)
	binary.Write(&buf, binary.LittleEndian, uint16(len(value)))
	buf.Write(value)
	return buf.Bytes()
}

// DicomBytes builds a file with a StudyDate and a PatientName element.
// The StudyDate element is left out when studyDate is empty.
func DicomBytes(studyDate string) []byte {
	return dicomBytes(studyDate, true)
}

// DicomBytesNoGroupLength is DicomBytes without the (0002,0000) element,
// as written by some older scanners.
func DicomBytesNoGroupLength(studyDate string) []byte {
	return dicomBytes(studyDate, false)
}

func dicomBytes(studyDate string, groupLength bool) []byte {
	transferSyntax := explicitElement(0x0002, 0x0010, "UI", []byte("1.2.840.10008.1.2.1"))

	var buf bytes.Buffer
	buf.Write(make([]byte, 128))
	buf.WriteString("DICM")
	if groupLength {
		length := make([]byte, 4)
		binary.LittleEndian.PutUint32(length, uint32(len(transferSyntax)))
		buf.Write(explicitElement(0x0002, 0x0000, "UL", length))
	}
	buf.Write(transferSyntax)
	if studyDate != "" {
		buf.Write(explicitElement(0x0008, 0x0020, "DA", []byte(studyDate)))
	}
	buf.Write(explicitElement(0x0010, 0x0010, "PN", []byte("Doe^J ")))
	return buf.Bytes()
}

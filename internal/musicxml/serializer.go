package musicxml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n"
	doctype   = `<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 3.1 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">` + "\n"

	scoreVersion = "3.1"
	partID       = "P1"
	partName     = "Music"
)

type scorePartwise struct {
	XMLName  xml.Name `xml:"score-partwise"`
	Version  string   `xml:"version,attr"`
	PartList partList `xml:"part-list"`
	Part     part     `xml:"part"`
}

type partList struct {
	ScorePart scorePart `xml:"score-part"`
}

type scorePart struct {
	ID       string `xml:"id,attr"`
	PartName string `xml:"part-name"`
}

type part struct {
	ID       string       `xml:"id,attr"`
	Measures []xmlMeasure `xml:"measure"`
}

type xmlMeasure struct {
	Number     int            `xml:"number,attr"`
	Attributes *xmlAttributes `xml:"attributes,omitempty"`
	Notes      []xmlNote      `xml:"note"`
	Barline    *xmlBarline    `xml:"barline,omitempty"`
}

type xmlAttributes struct {
	Divisions int     `xml:"divisions"`
	Key       xmlKey  `xml:"key"`
	Time      xmlTime `xml:"time"`
	Clef      xmlClef `xml:"clef"`
}

type xmlKey struct {
	Fifths int    `xml:"fifths"`
	Mode   string `xml:"mode,omitempty"`
}

type xmlTime struct {
	Beats    int `xml:"beats"`
	BeatType int `xml:"beat-type"`
}

type xmlClef struct {
	Sign string `xml:"sign"`
	Line int    `xml:"line"`
}

type xmlNote struct {
	Pitch     xmlPitch      `xml:"pitch"`
	Duration  int           `xml:"duration"`
	Type      string        `xml:"type"`
	Notations *xmlNotations `xml:"notations,omitempty"`
}

type xmlPitch struct {
	Step   string `xml:"step"`
	Alter  int    `xml:"alter,omitempty"`
	Octave int    `xml:"octave"`
}

type xmlNotations struct {
	Slur xmlSlur `xml:"slur"`
}

type xmlSlur struct {
	Type   string `xml:"type,attr"`
	Number int    `xml:"number,attr"`
}

type xmlBarline struct {
	Location string `xml:"location,attr"`
	BarStyle string `xml:"bar-style"`
}

// Serialize renders measures as a score-partwise MusicXML document with a
// single part. Attributes and the closing barline are emitted only where
// the measure carries them.
func Serialize(measures []Measure) (string, error) {
	score := scorePartwise{
		Version: scoreVersion,
		PartList: partList{
			ScorePart: scorePart{ID: partID, PartName: partName},
		},
		Part: part{
			ID:       partID,
			Measures: make([]xmlMeasure, 0, len(measures)),
		},
	}

	for i := range measures {
		score.Part.Measures = append(score.Part.Measures, measureToXML(i+1, &measures[i]))
	}

	body, err := xml.MarshalIndent(score, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal score: %w", err)
	}

	var sb strings.Builder
	sb.Grow(len(xmlHeader) + len(doctype) + len(body) + 1)
	sb.WriteString(xmlHeader)
	sb.WriteString(doctype)
	sb.Write(body)
	sb.WriteString("\n")
	return sb.String(), nil
}

func measureToXML(number int, m *Measure) xmlMeasure {
	out := xmlMeasure{
		Number: number,
		Notes:  make([]xmlNote, 0, len(m.Notes)),
	}

	if m.Attributes != nil {
		out.Attributes = &xmlAttributes{
			Divisions: DivisionsPerQuarter,
			Key:       xmlKey{Fifths: m.Attributes.Key.Fifths, Mode: m.Attributes.Key.Mode},
			Time:      xmlTime{Beats: m.Attributes.Time.Beats, BeatType: m.Attributes.Time.BeatType},
			Clef:      xmlClef{Sign: m.Attributes.Clef.Sign, Line: m.Attributes.Clef.Line},
		}
	}

	for _, n := range m.Notes {
		out.Notes = append(out.Notes, noteToXML(n))
	}

	if m.DoubleBar {
		out.Barline = &xmlBarline{Location: "right", BarStyle: "light-heavy"}
	}

	return out
}

func noteToXML(n Note) xmlNote {
	out := xmlNote{
		Pitch: xmlPitch{
			Step:   string(n.Pitch.Letter),
			Alter:  n.Pitch.Alter,
			Octave: n.Pitch.Octave,
		},
		Duration: n.Duration,
		Type:     TypeName(n.Duration),
	}

	if n.Slur != SlurNone {
		out.Notations = &xmlNotations{Slur: xmlSlur{Type: string(n.Slur), Number: 1}}
	}

	return out
}

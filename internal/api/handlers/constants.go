package handlers

const (
	// Response formats for exercise endpoints
	formatJSON          = "json"
	formatXML           = "xml"
	musicXMLContentType = "application/vnd.recordare.musicxml+xml"

	maxDSLLength = 4096 // Longest DSL body accepted from clients
)

package model

type IdentifyRequestBody struct {
	Notes []NoteInput `json:"notes"`
}

type IdentifyResponse struct {
	Candidates []ChordCandidate `json:"candidates"`
}

type KeyRef struct {
	Root string `json:"root"`
	Type string `json:"type"`
}

type SuggestRequestBody struct {
	Note string `json:"note"`
	Midi uint8  `json:"midi"`
	Key  KeyRef `json:"key"`
}

type SuggestResponse struct {
	Candidate *ChordCandidate `json:"candidate"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

package packets

type PhraseResponse struct {
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Phrase string `json:"phrase"`
}

type NowResponse struct {
	Timezone string `json:"timezone"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Phrase   string `json:"phrase"`
}

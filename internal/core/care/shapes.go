package care

import "encoding/json"

// 外部照護 API 的回應形狀不固定，依方案與端點版本而異：
// {"data":[...]}、{"species":[...]}、{"species":{...}}、
// {"results":[...]}，或直接回傳單一物種物件。
// extractSpecies 依序嘗試各種形狀，回傳第一筆物種的原始 JSON。
func extractSpecies(body []byte) (json.RawMessage, bool) {
	var envelope struct {
		Data    []json.RawMessage `json:"data"`
		Species json.RawMessage   `json:"species"`
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false
	}

	if len(envelope.Data) > 0 {
		return envelope.Data[0], true
	}

	if len(envelope.Species) > 0 {
		// species 可能是陣列或單一物件
		var list []json.RawMessage
		if err := json.Unmarshal(envelope.Species, &list); err == nil {
			if len(list) > 0 {
				return list[0], true
			}
		} else if isObject(envelope.Species) {
			return envelope.Species, true
		}
	}

	if len(envelope.Results) > 0 {
		return envelope.Results[0], true
	}

	// 最後嘗試：整個回應就是一筆物種物件
	var bare struct {
		ScientificName json.RawMessage `json:"scientific_name"`
		CommonName     json.RawMessage `json:"common_name"`
		ID             json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(body, &bare); err == nil {
		if len(bare.ScientificName) > 0 || len(bare.CommonName) > 0 || len(bare.ID) > 0 {
			return json.RawMessage(body), true
		}
	}

	return nil, false
}

// hasEmptyDataArray 檢查回應是否帶有明確為空的 data 陣列。
// 付費牆回應常以空 data 陣列搭配說明文字出現，需與單純查無資料區分。
func hasEmptyDataArray(body []byte) bool {
	var envelope struct {
		Data *[]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false
	}
	return envelope.Data != nil && len(*envelope.Data) == 0
}

func isObject(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

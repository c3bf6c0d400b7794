package response_models

import "encoding/json"

// StringList tolerates a model returning a scalar where an array was asked
// for: a bare string unmarshals as a one-element list.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = StringList{single}
	return nil
}

// PetProfile is the structured result of analyzing a pet photo. It is
// immutable once returned; the caller decides whether to persist it.
type PetProfile struct {
	Breed       string     `json:"breed"`
	Age         string     `json:"age"`
	Size        string     `json:"size"`
	Personality StringList `json:"personality"`
	Health      string     `json:"health"`
	Appearance  string     `json:"appearance"`
}

// UnknownPetProfile is the recovery value for the image-analysis path when
// the model output cannot be parsed: an explicit all-"unknown" profile
// instead of a failed request.
func UnknownPetProfile() *PetProfile {
	return &PetProfile{
		Breed:       "unknown",
		Age:         "unknown",
		Size:        "unknown",
		Personality: StringList{},
		Health:      "unknown",
		Appearance:  "unknown",
	}
}

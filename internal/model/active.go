package model

// ActiveSkill is the single skill currently governing tool-permission
// enforcement. It is serialized as one JSON object in the state file,
// with exactly these two fields.
type ActiveSkill struct {
	Name         string `json:"name"`
	AllowedTools string `json:"allowed_tools"`
}

package server

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// shallowMerge overlays the patch's top-level keys onto the existing record
// and decodes the result back into out. Nested objects are replaced whole,
// matching the update semantics clients rely on for theme edits.
func shallowMerge(existing interface{}, patch map[string]json.RawMessage, out interface{}) error {
	data, err := json.Marshal(existing)
	if err != nil {
		return err
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &merged); err != nil {
		return err
	}
	for k, v := range patch {
		merged[k] = v
	}
	data, err = json.Marshal(merged)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// parsePatch decodes the request body as a top-level JSON object.
func parsePatch(c *fiber.Ctx) (map[string]json.RawMessage, error) {
	patch := map[string]json.RawMessage{}
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return nil, err
	}
	return patch, nil
}

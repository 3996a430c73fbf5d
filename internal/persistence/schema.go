package persistence

import jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

// boardSchema describes the persisted snapshot: an ordered array of columns,
// each holding an ordered array of tasks.
const boardSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title", "tasks"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"title": {"type": "string"},
			"tasks": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["id", "content"],
					"properties": {
						"id": {"type": "string", "minLength": 1},
						"content": {"type": "string"}
					}
				}
			}
		}
	}
}`

var compiledBoardSchema = jsonschema.MustCompileString("board.schema.json", boardSchema)

package litview

import "github.com/signadot/litview/format"

const jsonSample = `{
    "name": "litview",
    "version": "1.0.0",
    "description": "A tool for viewing and debugging literal data",
    "features": [
        "interactive tree",
        "drag to move",
        "validation",
        "export"
    ],
    "settings": {
        "theme": "light",
        "autoFormat": true,
        "expandDepth": 2
    },
    "performance": {
        "maxFileSize": 5242880,
        "renderTime": 0.25,
        "supported": true
    },
    "examples": [
        {
            "id": 1,
            "title": "simple object",
            "complexity": "low"
        },
        {
            "id": 2,
            "title": "nested arrays",
            "complexity": "medium"
        },
        {
            "id": 3,
            "title": "complex structure",
            "complexity": "high"
        }
    ],
    "contact": null
}`

const objectLiteralSample = `{
    name: "object literal sample",
    version: "1.0.0",
    description: "A data structure written as an object literal",
    authors: [
        { name: "Alice", role: "Developer" },
        { name: "Bob", role: "Designer" }
    ],
    config: {
        debugMode: true,
        port: 3000,
        featuresEnabled: ["auth", "logging", "cache"]
    },
    status: null,
    isActive: true
}`

const dictLiteralSample = `{
    'name': 'dict literal sample',
    'version': '1.0.0',
    'description': 'A data structure written as a dict literal',
    'contributors': [
        {'name': 'Charlie', 'role': 'Tester'},
        {'name': 'Dana', 'role': 'Manager'}
    ],
    'settings': {
        'theme': 'dark',
        'auto_save': False,
        'retry_attempts': 3
    },
    'data_source': None,
    'is_valid': True
}`

// Sample returns the demo document for d. Unknown dialects get the json
// sample.
func Sample(d format.Dialect) string {
	switch d {
	case format.ObjectLiteralDialect:
		return objectLiteralSample
	case format.DictLiteralDialect:
		return dictLiteralSample
	default:
		return jsonSample
	}
}

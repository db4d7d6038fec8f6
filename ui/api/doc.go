// Package api provides REST API handlers for the answer UI.
//
// The API layer provides JSON endpoints for the chat backend to hand over
// answers and for clients that render answers themselves.
//
// # Endpoints
//
// Answers:
//   - POST /answers - Add an ask response to the conversation
//   - GET /answers - List answers (paginated, newest first)
//   - GET /answers/{id} - Parsed and sanitized answer with numbered citations
//   - GET /answers/{id}/data-points - Data points split into label and content
//
// Examples:
//   - GET /examples - Example prompts
//
// Cache:
//   - GET /cache/stats - Parse cache statistics of this API's renderer
//
// The API keeps its own parse cache. Inline references in the frontend
// link to its click routes while the API links documents directly, so the
// frontend's renderer and cache are separate and not counted here.
package api

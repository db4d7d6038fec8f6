// Package frontend provides SSR frontend handlers for the answer UI.
//
// The frontend uses HTMX for interactivity, loaded via CDN for simplicity.
//
// # Routes
//
// Main Pages:
//   - GET / - Conversation with example prompts and analysis panel
//
// Answer Fragments:
//   - GET /answers/{id} - Rendered answer
//   - GET /answers/{id}/thoughts - Thought process panel
//   - GET /answers/{id}/supporting-content - Supporting content panel
//   - GET /answers/{id}/citations/{n} - Citation click, redirects to the document
//   - POST /answers/{id}/followups/{n} - Follow-up question click
//
// Examples:
//   - POST /examples/{n} - Example prompt click
//
// Static Assets:
//   - GET /static/* - Embedded static files (CSS)
//
// Clicks are reported to the Actions passed to NewRouter. Follow-up and
// example clicks also answer with an HX-Trigger header carrying the text, so
// page scripts can submit it as the next question.
package frontend

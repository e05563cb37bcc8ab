// Package session implements the line-oriented driver sitting in front
// of the dispatch engine: it parses CREATE/ENQ/SKIP/RUN commands,
// frames the session (a blank line ends it) and forwards the engine's
// event-log lines verbatim. Malformed input never reaches the engine.
package session

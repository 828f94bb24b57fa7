/*
Package middleware provides HTTP cross-cutting helpers:

  - WithLogging: request start/completion logging via slog
  - JSONResponse / ErrorResponse: JSON serialization with consistent
    error shape
  - ParseJSONBody: request body decoding
  - CORS: permissive cross-origin headers for the frontend
*/
package middleware

// Package main ChainAdvisory API
//
// Blockchain consulting platform API. Expert project evaluations, consultations and research reports.
//
// Terms Of Service:
// https://chainadvisory.io/terms
//
// Schemes: http, https
// Host: localhost:8080
// BasePath: /api/v1
// Version: 1.0.0
// Contact: ChainAdvisory Support <support@chainadvisory.io> https://chainadvisory.io
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// Security:
// - bearerAuth: []
//
// SecurityDefinitions:
// bearerAuth:
//   type: apiKey
//   name: Authorization
//   in: header
//   description: JWT token in format "Bearer {token}"
//
// swagger:meta
package main

package main

import "finance-dashboard/internal/bootstrap"

// @title Finance Dashboard API
// @version 1.0
// @description Personal finance tracker with AI-powered financial coaching
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() { bootstrap.StartAPIServer() }

package main

// @title Weather Cache API
// @version 1.0
// @description Cache-aside weather forecast lookups backed by Open-Meteo, Nominatim, and MongoDB.

// @host localhost:8080
// @BasePath /

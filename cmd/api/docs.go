package main

// @title           Meteo Gateway API
// @version         1.0
// @description     Current weather for a place name or coordinates, backed by Open-Meteo.
// @host            localhost:8080
// @BasePath        /

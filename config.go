package main

type Config struct {
	HTTPPort     string
	RatesBaseURL string
	BaseCurrency string
}

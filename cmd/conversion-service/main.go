package main

import "currency-transactions/internal/bootstrap/conversion"

func main() { conversion.StartConversionService() }

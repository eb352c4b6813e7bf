package main

import "currency-transactions/internal/bootstrap/report"

func main() { report.StartReportService() }

package models

import "errors"

var (
	// ErrInputSource - пустой или некорректный набор исходных данных
	ErrInputSource = errors.New("input source error")
	// ErrExternalService - сбой или некорректный ответ сервиса курсов
	ErrExternalService = errors.New("external service error")
	// ErrMalformedName - длинная фамилия без имени или отчества
	ErrMalformedName = errors.New("malformed name")
	// ErrUnsupportedCurrency - код валюты отсутствует в таблице курсов
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrPersistence - сбой записи или фиксации в хранилище
	ErrPersistence = errors.New("persistence error")
	// ErrRunInProgress - запуск уже выполняется
	ErrRunInProgress = errors.New("run already in progress")
)

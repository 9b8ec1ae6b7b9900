package database

import "github.com/example/cardbot/pkg/models"

// DefaultCatalog is the built-in default-word set granted to every user.
// An operator may override it via the excel importer at startup.
var DefaultCatalog = []models.Word{
	{English: "red", Russian: "красный"},
	{English: "blue", Russian: "синий"},
	{English: "green", Russian: "зеленый"},
	{English: "yellow", Russian: "желтый"},
	{English: "black", Russian: "черный"},
	{English: "i", Russian: "я"},
	{English: "you", Russian: "ты"},
	{English: "he", Russian: "он"},
	{English: "she", Russian: "она"},
	{English: "it", Russian: "оно"},
	{English: "hello", Russian: "привет"},
	{English: "goodbye", Russian: "до свидания"},
	{English: "thank you", Russian: "спасибо"},
	{English: "please", Russian: "пожалуйста"},
	{English: "sorry", Russian: "извините"},
}

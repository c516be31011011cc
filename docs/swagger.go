// Package docs Foodspot Microservice API.
//
// Микросервис поиска заведений питания вокруг точки.
// Кандидаты приходят из OpenStreetMap (Overpass API) или из генеративного
// источника, нормализуются в единую модель, фильтруются и ранжируются
// по расстоянию или популярности.
//
// Основные возможности:
// - Поиск заведений в радиусе с текстовым запросом и фильтрами
// - Справочник категорий для фильтрации
// - Статистика по истории поиска
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs

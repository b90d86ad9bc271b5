// Package services содержит доменные правила доступа к заметкам и ошибки аутентификации.
package services

import "errors"

// ErrNotOwner возвращается при попытке изменить чужую заметку.
var ErrNotOwner = errors.New("not authorized")

// CanModify разрешает изменение только владельцу. Пустой идентификатор никогда не совпадает.
func CanModify(requesterID, ownerID string) bool {
	return requesterID != "" && requesterID == ownerID
}

package models

import "encoding/json"

// Credentials - email и пароль для внешнего сервиса аутентификации
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session - ответ сервиса аутентификации, передаётся клиенту без изменений
type Session json.RawMessage

func (s Session) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return s, nil
}

package models

import "strings"

// ComplaintDraft - данные формы жалобы до отправки
type ComplaintDraft struct {
	FullName string `json:"full_name"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Summary  string `json:"summary"`
}

// Reset очищает все поля формы
func (d *ComplaintDraft) Reset() {
	*d = ComplaintDraft{}
}

func (d ComplaintDraft) IsEmpty() bool {
	return d == ComplaintDraft{}
}

// Normalize возвращает копию с обрезанными пробелами
func (d ComplaintDraft) Normalize() ComplaintDraft {
	return ComplaintDraft{
		FullName: strings.TrimSpace(d.FullName),
		Country:  strings.TrimSpace(d.Country),
		City:     strings.TrimSpace(d.City),
		Summary:  strings.TrimSpace(d.Summary),
	}
}

// Complete сообщает, заполнены ли все поля
func (d ComplaintDraft) Complete() bool {
	n := d.Normalize()
	return n.FullName != "" && n.Country != "" && n.City != "" && n.Summary != ""
}

// Complaint - сохранённая жалоба. ID назначает удалённое хранилище.
type Complaint struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Summary  string `json:"summary"`
}

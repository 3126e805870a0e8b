package petservice

// Pet модель питомца из PetService
type Pet struct {
	ID           int64         `json:"id"`
	OwnerID      int64         `json:"owner_id"`
	Name         string        `json:"name"`
	Species      string        `json:"species"`
	Breed        string        `json:"breed"`
	Vaccinations []Vaccination `json:"vaccinations"`
}

// Vaccination запись о прививке питомца
type Vaccination struct {
	Name      string `json:"name"`
	Date      string `json:"date"`       // YYYY-MM-DD
	ExpiresAt string `json:"expires_at"` // YYYY-MM-DD, пустая строка = бессрочно
}

// ErrorResponse модель ошибки от PetService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

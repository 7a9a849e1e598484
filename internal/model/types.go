package model

// Chunk — непрерывный отрезок слов документа с позицией в исходном порядке
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Completion — результат одного запроса к модели: либо текст, либо ошибка
type Completion struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Err   error  `json:"-"`
}

// OK — запрос прошёл без ошибки
func (c Completion) OK() bool {
	return c.Err == nil
}

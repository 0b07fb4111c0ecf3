package document

type CounterDocument struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

func (doc CounterDocument) GetID() any {
	return doc.ID
}

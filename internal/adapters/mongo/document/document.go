package document

type Document interface {
	GetID() any
}

package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrder    = errors.New("invalid order")
	ErrSalidaNotFound  = errors.New("salida not found")
	ErrInvalidSalida   = errors.New("invalid salida")
	ErrLookupNotFound  = errors.New("lookup entry not found")
	ErrInvalidDateSpan = errors.New("start date is after end date")

	ErrShippingOptionNotFound = errors.New("shipping option not found")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return errors.Join(ErrInvalidOrder, err)
	}
	return nil
}

func (r *RateResponse) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *RateResponse) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(r)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Address{})
	gob.Register(RateResponse{})
	gob.Register(ShippingOption{})
}

package slot

type CreateSlotRequest struct {
	SlotName  string   `json:"slotName" validate:"required,max=120"`
	SlotTime  string   `json:"slotTime" validate:"required,max=40"`
	Days      []string `json:"days" validate:"required,min=1,dive,required"`
	ClassName string   `json:"className" validate:"required,max=120"`
}

// CreateSlotsRequest accepts a batch of slots.
type CreateSlotsRequest struct {
	Slots []CreateSlotRequest `json:"slots" validate:"required,min=1,max=50,dive"`
}

func (r CreateSlotsRequest) toSlots() []Slot {
	out := make([]Slot, 0, len(r.Slots))
	for _, s := range r.Slots {
		out = append(out, Slot{
			SlotName:  s.SlotName,
			SlotTime:  s.SlotTime,
			Days:      s.Days,
			ClassName: s.ClassName,
		})
	}
	return out
}

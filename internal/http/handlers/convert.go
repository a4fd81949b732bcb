package handlers

import "github.com/lamkn06/delivery-ops/internal/domain"

func deliveryToResponse(d *domain.Delivery) deliveryResponse {
	resp := deliveryResponse{
		ID:           d.ID,
		OrderID:      d.OrderID,
		TrackingCode: d.TrackingCode,
		Domain:       string(d.Domain),
		PickupOnly:   d.PickupOnly,
		Status:       string(d.Status),
		DriverID:     d.DriverID,
		ThirdParty:   thirdPartyToResponse(d.ThirdParty),
		Stops:        make([]stopResponse, 0, len(d.Stops)),
		Fee:          feeToResponse(d.Fee),
		Histories:    make([]historyResponse, 0, len(d.Histories)),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if next, ok := d.NextStatus(); ok {
		resp.NextStatus = string(next.Status)
	}
	for _, s := range d.Stops {
		resp.Stops = append(resp.Stops, stopResponse{
			ID:            s.ID,
			SequenceNo:    s.SequenceNo,
			ContactName:   s.ContactName,
			ContactNumber: s.ContactNumber,
			Address:       s.Address,
			State:         string(s.State(d.Progress)),
			ProofPhotoURL: s.ProofPhotoURL,
			ProofSignedBy: s.ProofSignedBy,
		})
	}
	for _, h := range d.Histories {
		resp.Histories = append(resp.Histories, historyResponse{
			Status:    string(h.Status),
			ActorType: h.ActorType,
			ActorID:   h.ActorID,
			ActorName: h.ActorName,
			Note:      h.Note,
			At:        h.At,
		})
	}
	return resp
}

func feeToResponse(f domain.Fee) feeResponse {
	lines := f.DisplayLines()
	resp := feeResponse{
		Total:               f.Total,
		DeliveryFee:         f.DeliveryFee,
		OtherFee:            f.OtherFee,
		AmountToBeCollected: f.AmountToBeCollected,
		AmountToBeRemitted:  f.AmountToBeRemitted,
		Breakdown:           make([]feeLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Breakdown = append(resp.Breakdown, feeLineResponse{
			Particular: l.Particular,
			Amount:     l.Amount,
			Type:       string(l.Type),
		})
	}
	return resp
}

func thirdPartyToResponse(tp *domain.ThirdPartyCourier) *thirdPartyResponse {
	if tp == nil {
		return nil
	}
	return &thirdPartyResponse{
		ContactName:   tp.ContactName,
		ContactNumber: tp.ContactNumber,
	}
}

func assignResultToResponse(res domain.AssignResult) assignDeliveryResponse {
	return assignDeliveryResponse{
		DeliveryID:   res.DeliveryID,
		TrackingCode: res.TrackingCode,
		DriverID:     res.DriverID,
		ThirdParty:   thirdPartyToResponse(res.ThirdParty),
		Status:       string(res.Status),
		AssignedAt:   res.AssignedAt,
	}
}

func reassignResultToResponse(res domain.ReassignResult) reassignDeliveryResponse {
	return reassignDeliveryResponse{
		NewDeliveryID: res.NewDeliveryID,
		TrackingCode:  res.TrackingCode,
		DriverID:      res.DriverID,
		ThirdParty:    thirdPartyToResponse(res.ThirdParty),
		Status:        string(res.Status),
	}
}

func driverToResponse(d domain.Driver) driverResponse {
	return driverResponse{
		ID:             d.ID,
		Name:           d.Name,
		Phone:          d.Phone,
		VehicleType:    string(d.VehicleType),
		ApprovalStatus: string(d.ApprovalStatus),
		Active:         d.Active,
		Busy:           d.Busy,
	}
}

func driverPageToResponse(p domain.DriverPage) driverPageResponse {
	resp := driverPageResponse{
		Drivers: make([]driverResponse, 0, len(p.Drivers)),
		HasMore: p.HasMore,
	}
	for _, d := range p.Drivers {
		resp.Drivers = append(resp.Drivers, driverToResponse(d))
	}
	return resp
}

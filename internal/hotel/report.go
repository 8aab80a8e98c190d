package hotel

import "github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"

// BuildReport aggregates rooms and reservations into an occupancy and
// revenue report.  Pure function: it mutates nothing and performs no
// persistence.
//
// Revenue counts every stay that began, whether still in progress or
// already ended.  A room's status label is derived by scanning its
// reservations in collection order: CheckedIn wins over Reserved, a
// checked-out reservation no longer marks the room Reserved, and the
// first match determines the displayed customer name.
func BuildReport(rooms []*model.Room, reservations []*model.Reservation) model.Report {
	report := model.Report{
		TotalRooms: len(rooms),
		Rooms:      make([]model.RoomStatus, 0, len(rooms)),
	}
	for _, res := range reservations {
		if res.CheckedIn || res.CheckedOut {
			report.TotalRevenue += Bill(res)
		}
	}
	for _, room := range rooms {
		if !room.Available {
			report.OccupiedRooms++
		}
		status := model.RoomStatus{
			RoomNumber: room.Number,
			RoomType:   room.Type,
			Status:     model.RoomStatusAvailable,
		}
		for _, res := range reservations {
			if res.Room == nil || res.Room.Number != room.Number {
				continue
			}
			if res.CheckedIn {
				status.Status = model.RoomStatusCheckedIn
				status.CustomerName = customerName(res)
				break
			}
			if !res.CheckedOut && status.Status == model.RoomStatusAvailable {
				status.Status = model.RoomStatusReserved
				status.CustomerName = customerName(res)
			}
		}
		report.Rooms = append(report.Rooms, status)
	}
	return report
}

// Report produces a report over the desk's current state.  The
// snapshot is taken under the desk lock; aggregation itself is the
// pure BuildReport.
func (d *Desk) Report() model.Report {
	d.mu.Lock()
	defer d.mu.Unlock()
	return BuildReport(d.rooms, d.reservations)
}

func customerName(res *model.Reservation) string {
	if res.Customer == nil {
		return ""
	}
	return res.Customer.Name
}

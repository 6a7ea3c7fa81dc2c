package attendance

import "context"

type AttendanceService interface {
	ClockIn(ctx context.Context) (AttendanceResponse, error)
	ClockOut(ctx context.Context) (AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	GetMyAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	ApproveAttendance(ctx context.Context, req ApproveAttendanceRequest) (AttendanceResponse, error)
	RejectAttendance(ctx context.Context, req RejectAttendanceRequest) (AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error
}

package refdata

import "github.com/mikey/coldflow-core/internal/core"

// Seed datasets for the reporting stores. Every store backend serves the
// same records so reports are identical regardless of backing storage.

// SeedACTLClients returns the tracker rows for every managed client
func SeedACTLClients() []core.ACTLClientRow {
	return []core.ACTLClientRow{
		{ClientName: "Adaline", CompletionRate: 100.00, PositiveReplies: 1, TotalReplies: 62, TotalEmailSent: 28480, MeetingsBooked: core.NoMeetings, ReplyRate: 0.22, PositiveReplyRate: 1.61, PositiveReplyToMeeting: core.NoMeetings, HealthScore: "3 - low RR + low PR + needs leads"},
		{ClientName: "RocketReach", CompletionRate: 99.99, PositiveReplies: 9, TotalReplies: 92, TotalEmailSent: 53147, MeetingsBooked: 1, ReplyRate: 0.17, PositiveReplyRate: 9.78, PositiveReplyToMeeting: 11.11, HealthScore: "2 - low RR + needs leads"},
		{ClientName: "Vibes", CompletionRate: 99.88, PositiveReplies: 9, TotalReplies: 84, TotalEmailSent: 29777, MeetingsBooked: 1, ReplyRate: 0.28, PositiveReplyRate: 10.71, PositiveReplyToMeeting: 11.11, HealthScore: "2 - low RR + needs leads"},
		{ClientName: "Evil Genius", CompletionRate: 100.00, PositiveReplies: 4, TotalReplies: 73, TotalEmailSent: 16158, MeetingsBooked: core.NoMeetings, ReplyRate: 0.45, PositiveReplyRate: 5.48, PositiveReplyToMeeting: core.NoMeetings, HealthScore: "2 - low PR + needs leads"},
		{ClientName: "Humanly", CompletionRate: 99.92, PositiveReplies: 3, TotalReplies: 186, TotalEmailSent: 48022, MeetingsBooked: core.NoMeetings, ReplyRate: 0.39, PositiveReplyRate: 1.61, PositiveReplyToMeeting: core.NoMeetings, HealthScore: "2 - low PR + needs leads"},
		{ClientName: "Consumer Optix", CompletionRate: 100.00, PositiveReplies: 3, TotalReplies: 157, TotalEmailSent: 21079, MeetingsBooked: core.NoMeetings, ReplyRate: 0.74, PositiveReplyRate: 1.91, PositiveReplyToMeeting: core.NoMeetings, HealthScore: "2 - low PR + needs leads"},
		{ClientName: "Superstaff", CompletionRate: 74.18, PositiveReplies: 4, TotalReplies: 256, TotalEmailSent: 91060, MeetingsBooked: core.NoMeetings, ReplyRate: 0.28, PositiveReplyRate: 1.56, PositiveReplyToMeeting: core.NoMeetings, HealthScore: "2 - low RR + low PR"},
		{ClientName: "Cold Email Hackers/CEH/StoryGen", CompletionRate: 100.00, PositiveReplies: 4, TotalReplies: 66, TotalEmailSent: 17376, MeetingsBooked: 1, ReplyRate: 0.38, PositiveReplyRate: 6.06, PositiveReplyToMeeting: 25.00, HealthScore: "1 - needs leads"},
		{ClientName: "Privy", CompletionRate: 98.22, PositiveReplies: 8, TotalReplies: 127, TotalEmailSent: 18192, MeetingsBooked: 2, ReplyRate: 0.70, PositiveReplyRate: 6.30, PositiveReplyToMeeting: 25.00, HealthScore: "1 - needs leads"},
		{ClientName: "1bios", CompletionRate: 90.72, PositiveReplies: 4, TotalReplies: 49, TotalEmailSent: 8122, MeetingsBooked: core.NoMeetings, ReplyRate: 0.60, PositiveReplyRate: 8.16, PositiveReplyToMeeting: core.NoMeetings, HealthScore: "1 - needs leads"},
		{ClientName: "Allin Advisors", CompletionRate: 85.53, PositiveReplies: 9, TotalReplies: 112, TotalEmailSent: 17067, MeetingsBooked: core.NoMeetings, ReplyRate: 0.66, PositiveReplyRate: 8.04, PositiveReplyToMeeting: core.NoMeetings, HealthScore: "1 - needs leads"},
		{ClientName: "Interdependence", CompletionRate: 72.72, PositiveReplies: 10, TotalReplies: 95, TotalEmailSent: 39196, MeetingsBooked: core.NoMeetings, ReplyRate: 0.24, PositiveReplyRate: 10.53, PositiveReplyToMeeting: core.NoMeetings, HealthScore: "1 - low RR"},
		{ClientName: "PokerPower", CompletionRate: 61.64, PositiveReplies: 3, TotalReplies: 107, TotalEmailSent: 11916, MeetingsBooked: 1, ReplyRate: 0.90, PositiveReplyRate: 2.80, PositiveReplyToMeeting: 33.33, HealthScore: "1 - low PR"},
		{ClientName: "iDecide", CompletionRate: 43.07, PositiveReplies: 5, TotalReplies: 91, TotalEmailSent: 17928, MeetingsBooked: core.NoMeetings, ReplyRate: 0.51, PositiveReplyRate: 5.49, PositiveReplyToMeeting: core.NoMeetings, HealthScore: "1 - low PR"},
		{ClientName: "Uplead", CompletionRate: 78.51, PositiveReplies: 11, TotalReplies: 41, TotalEmailSent: 5000, MeetingsBooked: 1, ReplyRate: 0.82, PositiveReplyRate: 26.83, PositiveReplyToMeeting: 9.09, HealthScore: "✔ Good"},
	}
}

// SeedClientContracts returns the engagement records behind the overall
// stats reports
func SeedClientContracts() []core.ClientContract {
	return []core.ClientContract{
		{Name: "Adaline", ContractStart: "2024-01-15", TotalSent: 28480},
		{Name: "RocketReach", ContractStart: "2023-11-20", TotalSent: 53147},
		{Name: "Vibes", ContractStart: "2024-02-01", TotalSent: 29777},
		{Name: "Privy", ContractStart: "2023-12-10", TotalSent: 18192},
		{Name: "Uplead", ContractStart: "2024-03-05", TotalSent: 5000},
		{Name: "Humanly", ContractStart: "2024-01-08", TotalSent: 48022},
		{Name: "Consumer Optix", ContractStart: "2023-10-15", TotalSent: 21079},
		{Name: "Superstaff", ContractStart: "2023-09-01", TotalSent: 91060},
		{Name: "Evil Genius", ContractStart: "2024-02-20", TotalSent: 16158},
	}
}

// SeedMeetings returns the booked meeting records
func SeedMeetings() []core.MeetingRecord {
	return []core.MeetingRecord{
		{ID: "meeting_001", ProspectName: "Sarah Chen", Email: "sarah.chen@techflow-demo.com", Company: "TechFlow Solutions", Title: "VP of Marketing", CampaignName: "Q4 SaaS Outreach", MeetingDate: "2024-12-18", MeetingTime: "2:00 PM EST", Status: core.MeetingStatusAttended, BookedDate: "2024-12-10", Source: "Step 1 - Initial outreach"},
		{ID: "meeting_002", ProspectName: "Marcus Johnson", Email: "marcus.johnson@cloudstack-demo.com", Company: "CloudStack Inc", Title: "Director of Sales", CampaignName: "Q4 SaaS Outreach", MeetingDate: "2024-12-20", MeetingTime: "10:00 AM EST", Status: core.MeetingStatusAttended, BookedDate: "2024-12-12", Source: "Step 2 - Follow-up"},
		{ID: "meeting_003", ProspectName: "Emily Rodriguez", Email: "emily.rodriguez@saasify-demo.com", Company: "SaaSify", Title: "Marketing Director", CampaignName: "Fintech Decision Makers", MeetingDate: "2024-12-19", MeetingTime: "3:30 PM EST", Status: core.MeetingStatusNoShow, BookedDate: "2024-12-11", Source: "Step 1 - Initial outreach"},
		{ID: "meeting_004", ProspectName: "David Kim", Email: "david.kim@datapipe-demo.com", Company: "DataPipe", Title: "CTO", CampaignName: "Agency Partnership", MeetingDate: "2024-12-21", MeetingTime: "11:00 AM EST", Status: core.MeetingStatusRescheduled, BookedDate: "2024-12-13", Source: "Step 3 - Value-add follow-up"},
		{ID: "meeting_005", ProspectName: "Lisa Thompson", Email: "lisa.thompson@flowmetrics-demo.com", Company: "FlowMetrics", Title: "Head of Growth", CampaignName: "Q4 SaaS Outreach", MeetingDate: "2024-12-17", MeetingTime: "1:00 PM EST", Status: core.MeetingStatusAttended, BookedDate: "2024-12-09", Source: "Step 1 - Initial outreach"},
		{ID: "meeting_006", ProspectName: "Michael Chen", Email: "michael.chen@privy-demo.com", Company: "Privy", Title: "VP of Sales", CampaignName: "Fintech Decision Makers", MeetingDate: "2024-12-22", MeetingTime: "2:30 PM EST", Status: core.MeetingStatusCancelled, BookedDate: "2024-12-14", Source: "Step 2 - Follow-up"},
		{ID: "meeting_007", ProspectName: "Jennifer Park", Email: "jennifer.park@uplead-demo.com", Company: "Uplead", Title: "Marketing Manager", CampaignName: "Agency Partnership", MeetingDate: "2024-12-16", MeetingTime: "4:00 PM EST", Status: core.MeetingStatusAttended, BookedDate: "2024-12-08", Source: "Step 1 - Initial outreach"},
		{ID: "meeting_008", ProspectName: "Robert Martinez", Email: "robert.martinez@privy-demo.com", Company: "Privy", Title: "VP of Sales", CampaignName: "Q4 SaaS Outreach", MeetingDate: "2024-12-19", MeetingTime: "2:00 PM EST", Status: core.MeetingStatusAttended, BookedDate: "2024-12-11", Source: "Step 1 - Initial outreach"},
		{ID: "meeting_009", ProspectName: "Amanda Wilson", Email: "amanda.wilson@privy-demo.com", Company: "Privy", Title: "Director of Marketing", CampaignName: "Q4 SaaS Outreach", MeetingDate: "2024-12-21", MeetingTime: "11:00 AM EST", Status: core.MeetingStatusNoShow, BookedDate: "2024-12-13", Source: "Step 2 - Follow-up"},
		{ID: "meeting_010", ProspectName: "James Anderson", Email: "james.anderson@adaline-demo.com", Company: "Adaline", Title: "CTO", CampaignName: "Fintech Decision Makers", MeetingDate: "2024-12-18", MeetingTime: "3:00 PM EST", Status: core.MeetingStatusAttended, BookedDate: "2024-12-10", Source: "Step 1 - Initial outreach"},
		{ID: "meeting_011", ProspectName: "Patricia Brown", Email: "patricia.brown@adaline-demo.com", Company: "Adaline", Title: "Head of Revenue", CampaignName: "Agency Partnership", MeetingDate: "2024-12-20", MeetingTime: "10:30 AM EST", Status: core.MeetingStatusRescheduled, BookedDate: "2024-12-12", Source: "Step 3 - Value-add follow-up"},
		{ID: "meeting_012", ProspectName: "Christopher Lee", Email: "christopher.lee@rocketreach-demo.com", Company: "RocketReach", Title: "VP of Marketing", CampaignName: "Q4 SaaS Outreach", MeetingDate: "2024-12-17", MeetingTime: "1:30 PM EST", Status: core.MeetingStatusAttended, BookedDate: "2024-12-09", Source: "Step 1 - Initial outreach"},
		{ID: "meeting_013", ProspectName: "Nancy Taylor", Email: "nancy.taylor@rocketreach-demo.com", Company: "RocketReach", Title: "Sales Director", CampaignName: "Fintech Decision Makers", MeetingDate: "2024-12-22", MeetingTime: "2:00 PM EST", Status: core.MeetingStatusCancelled, BookedDate: "2024-12-14", Source: "Step 2 - Follow-up"},
	}
}

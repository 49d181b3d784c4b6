package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/logger"
)

// Confidence scores reported by the matcher
const (
	confidenceKeyword  = 0.95
	confidenceComputed = 0.98
	confidenceFallback = 0.3
)

const fallbackResponse = "I'm not sure about that. You can ask me about: Attendance, Curriculum, Students, Activities, Certificates, Dashboard, Roles, Login, or Reports. Type 'help' for more information."

// knowledgeEntry pairs a keyword list with a canned response. Matching is
// first-match-wins in declaration order.
type knowledgeEntry struct {
	keywords []string
	response string
}

// knowledgeBase is the static topic table loaded at process start
var knowledgeBase = []knowledgeEntry{
	{
		keywords: []string{"hi", "hello", "hey", "greetings", "good morning", "good afternoon"},
		response: "Hello! 👋 Welcome to EduTrack. How can I help you today? You can ask me about attendance, curriculum, students, activities, certificates, or general information.",
	},
	{
		keywords: []string{"attendance", "mark attendance", "present", "absent", "late", "attendance rate"},
		response: `You can mark attendance by going to "Mark Attendance" in the sidebar. Select the date and mark each student as Present, Absent, or Late. Then click "Save Attendance". You can also view reports in "Attendance Report" with filters and CSV export.`,
	},
	{
		keywords: []string{"curriculum", "subject", "syllabus", "topic", "course"},
		response: `Curriculum management allows you to create subjects and track topics. Go to "Curriculum" in the sidebar. Click "Add Subject" to create a new course. Add topics to the subject and mark them as completed to track progress with visual indicators.`,
	},
	{
		keywords: []string{"student", "add student", "manage students", "enrollment"},
		response: `To manage students, go to "Manage Students" in the sidebar. Click "Add Student" to add new students with their name, email, roll number, and class. You can view all students in a table and delete them if needed.`,
	},
	{
		keywords: []string{"activity", "activity management", "event", "achievement", "sport", "club"},
		response: `Co-curriculum activities can be managed through "Add Activity" and "Activity List" in the sidebar. You can record student participation in events, sports, clubs, and workshops. Each activity can be categorized and tracked for internal evaluation.`,
	},
	{
		keywords: []string{"certificate", "certificate management", "award", "proof", "achievement"},
		response: `Upload certificates through "Certificates" in the sidebar. Click "Upload Certificate" to record student achievements with activity title, issue date, and link to digital proof. View all certificates in a table with download options.`,
	},
	{
		keywords: []string{"dashboard", "stats", "statistics", "overview", "analytics", "report"},
		response: "The Dashboard shows real-time statistics including total students, present/absent today, attendance rate percentage, and total activities. It provides a quick overview of your class performance and upcoming data trends.",
	},
	{
		keywords: []string{"role", "teacher", "student", "admin", "access", "permission"},
		response: "EduTrack supports three roles: Students can view their attendance and activities. Teachers can manage students, mark attendance, create curriculum, and upload certificates. Admins have full system access. Your role determines which features you can access.",
	},
	{
		keywords: []string{"login", "signup", "sign up", "register", "account", "password"},
		response: `To login, enter your email and password. When signing up, select your role (Student/Teacher/Admin). Teachers get full management access, students have limited viewing access. Use "Forgot Password" if needed (currently manual reset required).`,
	},
	{
		keywords: []string{"report", "export", "csv", "download", "attendance report"},
		response: `You can generate reports through "Attendance Report" in the sidebar. Filter by date, status, or student. The report shows detailed attendance records. Click "Export CSV" to download the data for use in Excel or other programs.`,
	},
	{
		keywords: []string{"help", "how to", "tutorial", "guide", "support", "feature"},
		response: "I can help with any EduTrack feature! Ask me about: Attendance, Curriculum, Students, Activities, Certificates, Dashboard, Roles, Login, or Reports. For detailed guides, check the documentation files in the project root.",
	},
	{
		keywords: []string{"features", "what can", "capability", "available"},
		response: "EduTrack includes: Student Attendance Management, Curriculum Tracking, Co-Curriculum Activities, Certificate Management, Student Management, Role-Based Access, Dashboard Analytics, and Secure Authentication. All major educational management features are included!",
	},
}

// suggestionsByRole maps a role to its canned suggestion list
var suggestionsByRole = map[string][]string{
	"teacher": {
		"📚 How do I create a subject?",
		"👥 How do I add students?",
		"✅ How do I mark attendance?",
		"📜 How do I upload certificates?",
		"📊 How do I view reports?",
	},
	"student": {
		"📊 What is my attendance percentage?",
		"📋 How do I view my attendance?",
		"🏆 How do I view my activities?",
		"📚 What is curriculum?",
		"❓ What features can I access?",
	},
	"admin": {
		"📚 Curriculum management?",
		"👥 Student management?",
		"✅ Attendance tracking?",
		"📊 System analytics?",
		"🔐 Role-based access?",
	},
}

var defaultSuggestions = []string{
	"👋 Hello! How can I help?",
	"📚 Tell me about EduTrack features",
	"🔐 How do I login?",
	"❓ What can you help me with?",
	"📖 Show me the help guide",
}

// ChatUserLookup resolves the caller for data-driven intents
type ChatUserLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AttendanceCounter supplies (present, total) counts for one student
type AttendanceCounter interface {
	StatusCounts(ctx context.Context, studentID int64) (present, total int, err error)
}

// StudentCounter counts a teacher's students
type StudentCounter interface {
	CountByTeacher(ctx context.Context, teacherID int64) (int, error)
}

// ChatbotService answers messages with a keyword-containment scan over the
// static knowledge base, plus two data-driven intents that query live counts.
type ChatbotService struct {
	userRepo       ChatUserLookup
	attendanceRepo AttendanceCounter
	studentRepo    StudentCounter
}

// NewChatbotService creates a new chatbot service
func NewChatbotService(userRepo ChatUserLookup, attendanceRepo AttendanceCounter, studentRepo StudentCounter) *ChatbotService {
	return &ChatbotService{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
	}
}

// SendMessage matches the message against the knowledge base and the
// data-driven intents. Table matches score 0.95, computed answers 0.98, and
// the fallback 0.3.
func (s *ChatbotService) SendMessage(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.NewValidationError("Please provide a message")
	}

	message := strings.ToLower(strings.TrimSpace(req.Message))
	response, confidence := matchKnowledgeBase(message)

	if answer, ok := s.attendanceAnswer(ctx, message, req.UserID); ok {
		response, confidence = answer, confidenceComputed
	}
	if answer, ok := s.studentCountAnswer(ctx, message, req.UserID); ok {
		response, confidence = answer, confidenceComputed
	}

	if response == "" {
		response, confidence = fallbackResponse, confidenceFallback
	}

	return &dto.ChatMessageResponse{
		UserMessage: req.Message,
		BotResponse: response,
		Confidence:  confidence,
		Timestamp:   time.Now(),
	}, nil
}

// GetSuggestions returns the canned suggestions for a role. Unknown or empty
// roles get the default list; an empty role reports as "guest".
func (s *ChatbotService) GetSuggestions(role string) *dto.SuggestionsResponse {
	suggestions, ok := suggestionsByRole[role]
	if !ok {
		suggestions = defaultSuggestions
	}

	if role == "" {
		role = "guest"
	}

	return &dto.SuggestionsResponse{
		Suggestions: suggestions,
		Role:        role,
	}
}

// matchKnowledgeBase scans the table in declaration order and returns the
// first entry with a keyword contained in the message.
func matchKnowledgeBase(message string) (string, float64) {
	for _, entry := range knowledgeBase {
		for _, keyword := range entry.keywords {
			if strings.Contains(message, keyword) {
				return entry.response, confidenceKeyword
			}
		}
	}
	return "", 0
}

// attendanceAnswer computes a student's attendance percentage when the
// message asks for it and the caller resolves to a student. Lookup failures
// are logged and fall through to the table match.
func (s *ChatbotService) attendanceAnswer(ctx context.Context, message string, userID int64) (string, bool) {
	if userID == 0 {
		return "", false
	}
	if !strings.Contains(message, "my attendance") && !strings.Contains(message, "attendance percentage") {
		return "", false
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user.Role != models.RoleStudent {
		if err != nil {
			logger.Warn().Err(err).Int64("userId", userID).Msg("Chatbot attendance intent user lookup failed")
		}
		return "", false
	}

	present, total, err := s.attendanceRepo.StatusCounts(ctx, userID)
	if err != nil {
		logger.Warn().Err(err).Int64("userId", userID).Msg("Chatbot attendance intent stats lookup failed")
		return "", false
	}

	percentage := 0
	if total > 0 {
		percentage = int(float64(present)/float64(total)*100 + 0.5)
	}

	answer := fmt.Sprintf("Your attendance information:\n📊 Total Records: %d\n✅ Present: %d\n📈 Attendance Rate: %d%%\n\nKeep up your attendance!",
		total, present, percentage)
	return answer, true
}

// studentCountAnswer reports a teacher's student count when the message asks
// for it and the caller resolves to a teacher or admin.
func (s *ChatbotService) studentCountAnswer(ctx context.Context, message string, userID int64) (string, bool) {
	if userID == 0 {
		return "", false
	}
	if !strings.Contains(message, "how many students") && !strings.Contains(message, "total students") {
		return "", false
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || (user.Role != models.RoleTeacher && user.Role != models.RoleAdmin) {
		if err != nil {
			logger.Warn().Err(err).Int64("userId", userID).Msg("Chatbot student count intent user lookup failed")
		}
		return "", false
	}

	count, err := s.studentRepo.CountByTeacher(ctx, userID)
	if err != nil {
		logger.Warn().Err(err).Int64("userId", userID).Msg("Chatbot student count lookup failed")
		return "", false
	}

	return fmt.Sprintf("You have **%d** students enrolled in your classes. 👥", count), true
}

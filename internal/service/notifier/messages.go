package notifier

import (
	"fmt"
	"time"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
)

// messageDateFormat формат дат в текстах уведомлений (дд.мм.гггг)
const messageDateFormat = "02.01.2006"

func (s *Service) formatDate(t time.Time) string {
	return t.In(s.loc).Format(messageDateFormat)
}

// approvedGroupMessage текст для группы администраторов колонии
func (s *Service) approvedGroupMessage(b *domain.Booking, a *domain.Assignment) string {
	return fmt.Sprintf(`🎉 Ariza tasdiqlangan. Raqam: %s
👤 Arizachi: %s
📅 Berilgan sana: %s
⌚ Kelishi sana: %s
🟢 Holat: Tasdiqlangan
`,
		b.ColonyApplicationNumber,
		b.ApplicantName(),
		s.formatDate(b.CreatedAt),
		s.formatDate(a.StartDate),
	)
}

// approvedApplicantMessage текст для заявителя (с типом свидания)
func (s *Service) approvedApplicantMessage(b *domain.Booking, a *domain.Assignment) string {
	return fmt.Sprintf(`🎉 Ariza tasdiqlangan. Raqam: %s
👤 Arizachi: %s
📅 Berilgan sana: %s
⌚ Kelishi sana: %s
⏲️ Turi: %d-kunlik
🏛️ Koloniya: %d
🟢 Holat: Tasdiqlangan
`,
		b.ColonyApplicationNumber,
		b.ApplicantName(),
		s.formatDate(b.CreatedAt),
		s.formatDate(a.StartDate),
		a.Days,
		b.ColonyID,
	)
}

func (s *Service) rejectedMessage(b *domain.Booking, reason string) string {
	return fmt.Sprintf(`❌ Ariza rad etildi. Raqam: %s
👤 Arizachi: %s
📅 Berilgan sana: %s
📝 Sabab: %s
🔴 Holat: Rad etilgan
`,
		b.ColonyApplicationNumber,
		b.ApplicantName(),
		s.formatDate(b.CreatedAt),
		reason,
	)
}

func (s *Service) canceledMessage(b *domain.Booking) string {
	return fmt.Sprintf(`🚫 Ariza bekor qilindi. Raqam: %s
👤 Arizachi: %s
📅 Berilgan sana: %s
🔴 Holat: Bekor qilingan
`,
		b.ColonyApplicationNumber,
		b.ApplicantName(),
		s.formatDate(b.CreatedAt),
	)
}

func (s *Service) daysChangedMessage(b *domain.Booking, days int) string {
	return fmt.Sprintf(`📝 Ariza kunlari o'zgartirildi. Raqam: %s
👤 Arizachi: %s
📅 Berilgan sana: %s
⏲️ Yangi tur: %d-kunlik
🏛️ Koloniya: %d
🟡 Holat: Kutilmoqda
`,
		b.ColonyApplicationNumber,
		b.ApplicantName(),
		s.formatDate(b.CreatedAt),
		days,
		b.ColonyID,
	)
}

func (s *Service) closedMessage(b *domain.Booking) string {
	endDate := "N/A"
	if b.EndDate != nil {
		endDate = s.formatDate(*b.EndDate)
	}
	return fmt.Sprintf(`🏁 Ariza yakunlandi. Raqam: %s
👤 Arizachi: %s
📅 Yuborilgan sana: %s
📅 Tugash sanasi: %s
🏛️ Koloniya: %d
🟢 Holat: Yakunlangan
`,
		b.ColonyApplicationNumber,
		b.ApplicantName(),
		s.formatDate(b.CreatedAt),
		endDate,
		b.ColonyID,
	)
}

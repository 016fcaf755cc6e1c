package contract

import (
	"fmt"
)

// =============================================================================
// Queries
// =============================================================================

func (s *RegistrySuite) TestGetParticipantMissing() {
	_, err := s.contract.GetParticipant(s.as(avaID), 1)
	s.ErrorIs(err, ErrRecordNotFound)
	_, err = s.contract.GetParticipant(s.as(avaID), 0)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RegistrySuite) TestGetParticipantCountStartsAtZero() {
	s.Equal(uint64(0), s.count())
	s.register(avaID, "Ava")
	s.Equal(uint64(1), s.count())
}

func (s *RegistrySuite) TestListParticipantsPages() {
	for i := 1; i <= 12; i++ {
		s.register(avaID, fmt.Sprintf("p%d", i))
	}

	page, err := s.contract.ListParticipants(s.as(avaID), "5", "")
	s.Require().NoError(err)
	s.Equal(int32(5), page.FetchedCount)
	s.Equal("6", page.NextBookmark)
	s.Equal(uint64(1), page.Participants[0].ID)
	s.Equal(uint64(5), page.Participants[4].ID)

	page, err = s.contract.ListParticipants(s.as(avaID), "5", page.NextBookmark)
	s.Require().NoError(err)
	s.Equal("11", page.NextBookmark)
	s.Equal("p6", page.Participants[0].DisplayName)

	page, err = s.contract.ListParticipants(s.as(avaID), "5", page.NextBookmark)
	s.Require().NoError(err)
	s.Equal(int32(2), page.FetchedCount)
	s.Equal("", page.NextBookmark)
}

func (s *RegistrySuite) TestListParticipantsDefaults() {
	for i := 1; i <= 11; i++ {
		s.register(avaID, fmt.Sprintf("p%d", i))
	}

	page, err := s.contract.ListParticipants(s.as(avaID), "not-a-number", "")
	s.Require().NoError(err)
	s.Equal(int32(defaultPageSize), page.FetchedCount)
	s.Equal("11", page.NextBookmark)

	page, err = s.contract.ListParticipants(s.as(avaID), "1000", "")
	s.Require().NoError(err)
	s.Equal(int32(11), page.FetchedCount)
	s.Equal("", page.NextBookmark)
}

func (s *RegistrySuite) TestListParticipantsEmptyAndInvalidBookmark() {
	page, err := s.contract.ListParticipants(s.as(avaID), "10", "")
	s.Require().NoError(err)
	s.NotNil(page.Participants)
	s.Empty(page.Participants)
	s.Equal("", page.NextBookmark)

	_, err = s.contract.ListParticipants(s.as(avaID), "10", "zero")
	s.ErrorIs(err, ErrValidationFailed)
	_, err = s.contract.ListParticipants(s.as(avaID), "10", "0")
	s.ErrorIs(err, ErrValidationFailed)
}

func (s *RegistrySuite) TestGetMyParticipants() {
	s.register(avaID, "Ava")
	s.register(benID, "Ben")
	s.register(avaID, "Ava 2")

	mine, err := s.contract.GetMyParticipants(s.as(avaID))
	s.Require().NoError(err)
	s.Len(mine, 2)
	for _, p := range mine {
		s.Equal(avaID, p.Owner)
	}

	theirs, err := s.contract.GetMyParticipants(s.as(benID))
	s.Require().NoError(err)
	s.Require().Len(theirs, 1)
	s.Equal("Ben", theirs[0].DisplayName)
}

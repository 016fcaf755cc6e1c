package contract

import "participantregistry/model"

// =============================================================================
// Engagement
// =============================================================================

func (s *RegistrySuite) TestEngagementDefaultsAreNotPersisted() {
	id := s.register(avaID, "Ava")

	metrics, err := s.contract.GetEngagementMetrics(s.as(avaID), id)
	s.Require().NoError(err)
	s.Equal(uint64(0), metrics.VisitCount)
	s.Equal(int64(0), metrics.RecentVisit)
	s.Equal(model.DefaultInteraction, metrics.RecentInteraction)

	key, err := s.contract.createMetricsCompositeKey(s.as(avaID), id)
	s.Require().NoError(err)
	stored, err := s.stub.GetState(key)
	s.Require().NoError(err)
	s.Nil(stored)
}

func (s *RegistrySuite) TestRegisterLoginTwice() {
	id := s.register(avaID, "Ava")

	s.Require().NoError(s.contract.RegisterLogin(s.as(benID), id))
	s.Require().NoError(s.contract.RegisterLogin(s.as(avaID), id))
	lastLogin := s.height

	metrics, err := s.contract.GetEngagementMetrics(s.as(avaID), id)
	s.Require().NoError(err)
	s.Equal(uint64(2), metrics.VisitCount)
	s.Equal(lastLogin, metrics.RecentVisit)
	s.Equal(model.InteractionLogin, metrics.RecentInteraction)
	s.Equal(id, metrics.ParticipantID)
}

func (s *RegistrySuite) TestRegisterLoginMissingRecord() {
	s.ErrorIs(s.contract.RegisterLogin(s.as(avaID), 5), ErrRecordNotFound)
	_, err := s.contract.GetEngagementMetrics(s.as(avaID), 5)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RegistrySuite) TestRegisterLoginEmitsEvent() {
	id := s.register(avaID, "Ava")
	s.events()

	s.Require().NoError(s.contract.RegisterLogin(s.as(avaID), id))
	evs := s.events()
	s.Require().Len(evs, 1)
	s.Equal("ParticipantLogin", evs[0].name)
	s.Equal(float64(1), evs[0].payload["visitCount"])
}

func (s *RegistrySuite) TestLogActivityNeverMutates() {
	id := s.register(avaID, "Ava")
	s.Require().NoError(s.contract.RegisterLogin(s.as(avaID), id))
	before, err := s.contract.GetEngagementMetrics(s.as(avaID), id)
	s.Require().NoError(err)
	s.events()

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.contract.LogActivity(s.as(avaID), id, "post"))
	}

	after, err := s.contract.GetEngagementMetrics(s.as(avaID), id)
	s.Require().NoError(err)
	s.Equal(before, after)
	s.Empty(s.events())

	s.ErrorIs(s.contract.LogActivity(s.as(avaID), 77, "post"), ErrRecordNotFound)
}

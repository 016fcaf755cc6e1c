package contract

// =============================================================================
// Access & Ownership
// =============================================================================

func (s *RegistrySuite) TestConfirmOwnership() {
	id := s.register(avaID, "Ava")

	owns, err := s.contract.ConfirmOwnership(s.as(benID), id, avaID)
	s.Require().NoError(err)
	s.True(owns)

	owns, err = s.contract.ConfirmOwnership(s.as(avaID), id, benID)
	s.Require().NoError(err)
	s.False(owns)

	_, err = s.contract.ConfirmOwnership(s.as(avaID), 99, avaID)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RegistrySuite) TestCheckAccess() {
	id := s.register(avaID, "Ava")

	s.NoError(s.contract.CheckAccess(s.as(benID), id, avaID))
	s.ErrorIs(s.contract.CheckAccess(s.as(avaID), id, benID), ErrAccessDenied)
	s.ErrorIs(s.contract.CheckAccess(s.as(avaID), 99, avaID), ErrRecordNotFound)
}

func (s *RegistrySuite) TestCheckAccessIgnoresPermissionTable() {
	id := s.register(avaID, "Ava")
	s.Require().NoError(NewIdentityManager(s.as(avaID)).GrantAccess(id, benID))

	allowed, err := s.contract.GetAccessPermission(s.as(avaID), id, benID)
	s.Require().NoError(err)
	s.True(allowed)
	s.ErrorIs(s.contract.CheckAccess(s.as(avaID), id, benID), ErrAccessDenied)
}

func (s *RegistrySuite) TestGetAccessPermission() {
	id := s.register(avaID, "Ava")

	allowed, err := s.contract.GetAccessPermission(s.as(avaID), id, avaID)
	s.Require().NoError(err)
	s.True(allowed)

	allowed, err = s.contract.GetAccessPermission(s.as(avaID), id, benID)
	s.Require().NoError(err)
	s.False(allowed)

	_, err = s.contract.GetAccessPermission(s.as(avaID), 99, avaID)
	s.ErrorIs(err, ErrRecordNotFound)
}

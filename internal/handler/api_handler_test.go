package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"group-ledger/api"
	"group-ledger/internal/handler"
	"group-ledger/internal/repository"
	"group-ledger/internal/storage"
	"group-ledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// LedgerAPITestSuite гоняет запросы через маршрутизатор echo и весь стек в памяти.
type LedgerAPITestSuite struct {
	suite.Suite
	store *storage.Storage
	echo  *echo.Echo
}

func (suite *LedgerAPITestSuite) SetupTest() {
	suite.store = storage.New()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	groupRepo := repository.NewGroupRepository(suite.store)
	userRepo := repository.NewUserRepository(suite.store)
	txRepo := repository.NewTransactionRepository(suite.store)

	groupUC := usecase.NewGroupUseCase(groupRepo)
	userUC := usecase.NewUserUseCase(userRepo, groupRepo)
	txUC := usecase.NewTransactionUseCase(userRepo, txRepo, groupRepo)

	suite.echo = echo.New()
	api.RegisterHandlers(suite.echo, handler.NewAPIHandler(groupUC, userUC, txUC, logger))
}

func (suite *LedgerAPITestSuite) TearDownTest() {
	suite.store.Close()
}

func (suite *LedgerAPITestSuite) do(method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *LedgerAPITestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), v))
}

func (suite *LedgerAPITestSuite) errorCode(rec *httptest.ResponseRecorder) api.ErrorResponseErrorCode {
	var resp api.ErrorResponse
	suite.decode(rec, &resp)
	return resp.Error.Code
}

func (suite *LedgerAPITestSuite) seed(group string, users ...string) {
	rec := suite.do(http.MethodPost, "/group/add", api.PostGroupAddJSONBody{GroupName: group})
	require.Equal(suite.T(), http.StatusCreated, rec.Code)
	for _, u := range users {
		rec = suite.do(http.MethodPost, "/user/add", api.UserRef{GroupName: group, UserName: u})
		require.Equal(suite.T(), http.StatusCreated, rec.Code)
	}
}

func (suite *LedgerAPITestSuite) addTx(group, user string, amount float64) {
	rec := suite.do(http.MethodPost, "/transaction/add", api.PostTransactionAddJSONBody{
		GroupName: group,
		UserName:  user,
		Amount:    amount,
	})
	require.Equal(suite.T(), http.StatusCreated, rec.Code)
}

func (suite *LedgerAPITestSuite) listUsers(group string) []api.User {
	rec := suite.do(http.MethodGet, "/user/list?group_name="+group, nil)
	require.Equal(suite.T(), http.StatusOK, rec.Code)

	var resp struct {
		Users []api.User `json:"users"`
	}
	suite.decode(rec, &resp)
	return resp.Users
}

func (suite *LedgerAPITestSuite) TestPostGroupAdd_Success() {
	rec := suite.do(http.MethodPost, "/group/add", api.PostGroupAddJSONBody{GroupName: "trip"})

	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var resp struct {
		Group api.Group `json:"group"`
	}
	suite.decode(rec, &resp)
	assert.Equal(suite.T(), "trip", resp.Group.GroupName)
}

func (suite *LedgerAPITestSuite) TestPostGroupAdd_Errors() {
	suite.seed("trip")

	rec := suite.do(http.MethodPost, "/group/add", api.PostGroupAddJSONBody{GroupName: "trip"})
	assert.Equal(suite.T(), http.StatusConflict, rec.Code)
	assert.Equal(suite.T(), api.GROUPEXISTS, suite.errorCode(rec))

	rec = suite.do(http.MethodPost, "/group/add", api.PostGroupAddJSONBody{GroupName: ""})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(suite.T(), api.INVALIDREQUEST, suite.errorCode(rec))

	req := httptest.NewRequest(http.MethodPost, "/group/add", bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	bad := httptest.NewRecorder()
	suite.echo.ServeHTTP(bad, req)
	assert.Equal(suite.T(), http.StatusBadRequest, bad.Code)
}

func (suite *LedgerAPITestSuite) TestGetGroupList_CreationOrder() {
	rec := suite.do(http.MethodGet, "/group/list", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"groups":[]}`, rec.Body.String())

	suite.seed("zeta")
	suite.seed("alpha")
	suite.seed("mid")

	rec = suite.do(http.MethodGet, "/group/list", nil)
	assert.JSONEq(suite.T(), `{"groups":["zeta","alpha","mid"]}`, rec.Body.String())
}

func (suite *LedgerAPITestSuite) TestPostUserAdd_Errors() {
	suite.seed("flat", "alice")

	rec := suite.do(http.MethodPost, "/user/add", api.UserRef{GroupName: "flat", UserName: "alice"})
	assert.Equal(suite.T(), http.StatusConflict, rec.Code)
	assert.Equal(suite.T(), api.USEREXISTS, suite.errorCode(rec))

	rec = suite.do(http.MethodPost, "/user/add", api.UserRef{GroupName: "nonexistent", UserName: "bob"})
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	assert.Equal(suite.T(), api.NOTFOUND, suite.errorCode(rec))

	rec = suite.do(http.MethodPost, "/user/add", api.UserRef{GroupName: "flat", UserName: ""})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *LedgerAPITestSuite) TestUserList_SortedByBalance() {
	suite.seed("flat", "alice", "bob", "carol")
	suite.addTx("flat", "alice", 30)
	suite.addTx("flat", "bob", -10)
	suite.addTx("flat", "carol", 5)
	suite.addTx("flat", "alice", -25)

	users := suite.listUsers("flat")

	require.Len(suite.T(), users, 3)
	assert.Equal(suite.T(), api.User{UserName: "bob", GroupName: "flat", Balance: -10}, users[0])
	// carol достигла 5 раньше, поэтому стоит перед alice
	assert.Equal(suite.T(), "carol", users[1].UserName)
	assert.Equal(suite.T(), api.User{UserName: "alice", GroupName: "flat", Balance: 5}, users[2])
}

func (suite *LedgerAPITestSuite) TestGetUserList_Empty() {
	suite.seed("empty")

	rec := suite.do(http.MethodGet, "/user/list?group_name=empty", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"group_name":"empty","users":[]}`, rec.Body.String())

	rec = suite.do(http.MethodGet, "/user/list?group_name=nonexistent", nil)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)

	rec = suite.do(http.MethodGet, "/user/list", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *LedgerAPITestSuite) TestGetUserBalance() {
	suite.seed("flat", "alice")
	suite.addTx("flat", "alice", 12.5)
	suite.addTx("flat", "alice", -2.25)

	rec := suite.do(http.MethodGet, "/user/balance?group_name=flat&user_name=alice", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(),
		`{"user":{"user_name":"alice","group_name":"flat","balance":10.25}}`,
		rec.Body.String())

	rec = suite.do(http.MethodGet, "/user/balance?group_name=flat&user_name=ghost", nil)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func (suite *LedgerAPITestSuite) TestGetUserUnderPaid_Ties() {
	suite.seed("flat", "A", "B", "C")
	suite.addTx("flat", "C", 10)
	suite.addTx("flat", "B", 5)
	suite.addTx("flat", "A", 5)

	rec := suite.do(http.MethodGet, "/user/underPaid?group_name=flat", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var resp struct {
		Users []api.User `json:"users"`
	}
	suite.decode(rec, &resp)
	require.Len(suite.T(), resp.Users, 2)
	assert.Equal(suite.T(), "A", resp.Users[0].UserName)
	assert.Equal(suite.T(), "B", resp.Users[1].UserName)
}

func (suite *LedgerAPITestSuite) TestGetUserUnderPaid_EmptyGroup() {
	suite.seed("empty")

	rec := suite.do(http.MethodGet, "/user/underPaid?group_name=empty", nil)

	assert.Equal(suite.T(), http.StatusConflict, rec.Code)
	assert.Equal(suite.T(), api.EMPTYGROUP, suite.errorCode(rec))
}

func (suite *LedgerAPITestSuite) TestPostTransactionAdd_UnknownUser() {
	suite.seed("trip", "alice")

	rec := suite.do(http.MethodPost, "/transaction/add", api.PostTransactionAddJSONBody{
		GroupName: "trip",
		UserName:  "ghost",
		Amount:    10,
	})

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func (suite *LedgerAPITestSuite) TestGetTransactionRecent_NewestFirst() {
	suite.seed("trip", "alice", "bob")
	suite.addTx("trip", "alice", 1)
	suite.addTx("trip", "bob", 2)
	suite.addTx("trip", "alice", 3)

	rec := suite.do(http.MethodGet, "/transaction/recent?group_name=trip&limit=2", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{
		"group_name": "trip",
		"transactions": [
			{"seq": 1, "user_name": "alice", "amount": 3},
			{"seq": 2, "user_name": "bob", "amount": 2}
		]
	}`, rec.Body.String())

	rec = suite.do(http.MethodGet, "/transaction/recent?group_name=trip&limit=0", nil)
	assert.JSONEq(suite.T(), `{"group_name":"trip","transactions":[]}`, rec.Body.String())

	rec = suite.do(http.MethodGet, "/transaction/recent?group_name=trip&limit=abc", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *LedgerAPITestSuite) TestPostUserRemove_PurgesTransactions() {
	suite.seed("trip", "alice", "bob")
	suite.addTx("trip", "alice", 1)
	suite.addTx("trip", "bob", 2)
	suite.addTx("trip", "alice", 3)

	rec := suite.do(http.MethodPost, "/user/remove", api.UserRef{GroupName: "trip", UserName: "alice"})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(),
		`{"group_name":"trip","user_name":"alice","purged_transactions":2}`,
		rec.Body.String())

	rec = suite.do(http.MethodGet, "/transaction/recent?group_name=trip&limit=10", nil)
	assert.JSONEq(suite.T(), `{
		"group_name": "trip",
		"transactions": [{"seq": 1, "user_name": "bob", "amount": 2}]
	}`, rec.Body.String())

	rec = suite.do(http.MethodPost, "/user/remove", api.UserRef{GroupName: "trip", UserName: "alice"})
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func TestLedgerAPITestSuite(t *testing.T) {
	suite.Run(t, new(LedgerAPITestSuite))
}

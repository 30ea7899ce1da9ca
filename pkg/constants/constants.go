package constants

const (
	SqliteDbFileName = "projetos.db"
	SecretsFileName  = ".projetos-secrets"
	ConfigFileName   = "config.yml"
	TokenFileName    = ".token"
	APIBaseEnv       = "API_BASE"
	DefaultAPIBase   = "http://localhost:8000/api"
	DefaultAPIPrefix = "/api"
)

const (
	ProjetosTableName          = "projetos"
	ProjetosIdColumn           = "id"
	ProjetosNomeColumn         = "nome"
	ProjetosDescricaoColumn    = "descricao"
	ProjetosDtaInicioColumn    = "dtainicio"
	ProjetosDtaConclusaoColumn = "dtaconclusao"
)

const (
	TarefasTableName          = "tarefas"
	TarefasIdColumn           = "id"
	TarefasTituloColumn       = "titulo"
	TarefasDescricaoColumn    = "descricao"
	TarefasProjetoIdColumn    = "projeto_id"
	TarefasConcluidaColumn    = "concluida"
	TarefasDtaInicioColumn    = "dtainicio"
	TarefasDtaConclusaoColumn = "dtaconclusao"
	TarefasPrioridadeColumn   = "prioridade"
)

const (
	UsuariosTableName        = "usuarios"
	UsuariosIdColumn         = "id"
	UsuariosUsernameColumn   = "username"
	UsuariosEmailColumn      = "email"
	UsuariosPasswordColumn   = "password_hash"
	UsuariosDateJoinedColumn = "date_joined"
)

// Token types carried in the token_type claim.
const (
	AccessTokenType  = "access"
	RefreshTokenType = "refresh"
)

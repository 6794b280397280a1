package template

// JavaScript variants of the Express backend templates. Each constant is
// the complete content of one generated file.

const serverEntryPlainJS = `const express = require('express');
const cors = require('cors');

const app = express();

app.use(cors());
app.use(express.json());

app.get('/', (req, res) => {
  res.json({ message: 'Welcome to the {{.ProjectName}} API' });
});

const PORT = process.env.PORT || 5000;

app.listen(PORT, () => {
  console.log('Server running on port ' + PORT);
});
`

const serverEntryMongoJS = `require('dotenv').config();
const express = require('express');
const cors = require('cors');
const connectDB = require('./db/connect');
const userRoutes = require('./routes/userRoutes');

const app = express();

app.use(cors());
app.use(express.json());

app.get('/', (req, res) => {
  res.json({ message: 'Welcome to the {{.ProjectName}} API' });
});

app.use('/api/users', userRoutes);

const PORT = process.env.PORT || 5000;

const start = async () => {
  await connectDB();
  app.listen(PORT, () => {
    console.log('Server running on port ' + PORT);
  });
};

start();
`

const serverEntryPostgresJS = `require('dotenv').config();
const express = require('express');
const cors = require('cors');
const pool = require('./db/connect');
const userRoutes = require('./routes/userRoutes');

const app = express();

app.use(cors());
app.use(express.json());

app.get('/', (req, res) => {
  res.json({ message: 'Welcome to the {{.ProjectName}} API' });
});

app.use('/api/users', userRoutes);

const PORT = process.env.PORT || 5000;

const start = async () => {
  await pool.query('SELECT 1');
  console.log('PostgreSQL connected');
  app.listen(PORT, () => {
    console.log('Server running on port ' + PORT);
  });
};

start().catch((error) => {
  console.error('Failed to start server: ' + error.message);
  process.exit(1);
});
`

const databaseMongoJS = `const mongoose = require('mongoose');

const connectDB = async () => {
  try {
    const conn = await mongoose.connect(process.env.MONGODB_URI);
    console.log('MongoDB connected: ' + conn.connection.host);
  } catch (error) {
    console.error('MongoDB connection failed: ' + error.message);
    process.exit(1);
  }
};

module.exports = connectDB;
`

const databasePostgresJS = `const { Pool } = require('pg');

const pool = new Pool({
  host: process.env.PGHOST,
  port: process.env.PGPORT,
  user: process.env.PGUSER,
  password: process.env.PGPASSWORD,
  database: process.env.PGDATABASE,
});

pool.on('error', (error) => {
  console.error('Unexpected PostgreSQL error: ' + error.message);
  process.exit(1);
});

module.exports = pool;
`

const modelMongoJS = `const mongoose = require('mongoose');

const userSchema = new mongoose.Schema(
  {
    name: {
      type: String,
      required: true,
      trim: true,
    },
    email: {
      type: String,
      required: true,
      unique: true,
      lowercase: true,
    },
  },
  { timestamps: true }
);

module.exports = mongoose.model('User', userSchema);
`

const queriesPostgresJS = `const createUsersTable =
  'CREATE TABLE IF NOT EXISTS users (' +
  '  id SERIAL PRIMARY KEY,' +
  '  name VARCHAR(100) NOT NULL,' +
  '  email VARCHAR(255) UNIQUE NOT NULL,' +
  '  password VARCHAR(255) NOT NULL,' +
  '  created_at TIMESTAMPTZ DEFAULT NOW()' +
  ')';

const insertUser =
  'INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, name, email';

const findUserByEmail = 'SELECT * FROM users WHERE email = $1';

module.exports = {
  createUsersTable,
  insertUser,
  findUserByEmail,
};
`

const controllerMongoJS = `const User = require('../models/User');

const getUsers = async (req, res) => {
  try {
    const users = await User.find().sort({ createdAt: -1 });
    res.json(users);
  } catch (error) {
    res.status(500).json({ error: error.message });
  }
};

const createUser = async (req, res) => {
  try {
    const user = await User.create(req.body);
    res.status(201).json(user);
  } catch (error) {
    res.status(400).json({ error: error.message });
  }
};

module.exports = { getUsers, createUser };
`

const controllerPostgresJS = `const bcrypt = require('bcryptjs');
const jwt = require('jsonwebtoken');
const pool = require('../db/connect');
const queries = require('../queries/userQueries');

const register = async (req, res) => {
  try {
    const { name, email, password } = req.body;
    const hashed = await bcrypt.hash(password, 10);
    const result = await pool.query(queries.insertUser, [name, email, hashed]);
    res.status(201).json(result.rows[0]);
  } catch (error) {
    res.status(400).json({ error: error.message });
  }
};

const login = async (req, res) => {
  try {
    const { email, password } = req.body;
    const result = await pool.query(queries.findUserByEmail, [email]);
    const user = result.rows[0];
    if (!user || !(await bcrypt.compare(password, user.password))) {
      return res.status(401).json({ error: 'Invalid credentials' });
    }
    const token = jwt.sign({ id: user.id }, process.env.JWT_SECRET, {
      expiresIn: '1d',
    });
    res.json({ token });
  } catch (error) {
    res.status(500).json({ error: error.message });
  }
};

module.exports = { register, login };
`

const routesMongoJS = `const express = require('express');
const { getUsers, createUser } = require('../controllers/userController');

const router = express.Router();

router.get('/', getUsers);
router.post('/', createUser);

module.exports = router;
`

const routesPostgresJS = `const express = require('express');
const { register, login } = require('../controllers/userController');

const router = express.Router();

router.post('/register', register);
router.post('/login', login);

module.exports = router;
`
